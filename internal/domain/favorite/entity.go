package favorite

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidColor = errors.New("color must be a hex code like #1a2b3c")

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Favorite pins a team for a user. Color optionally tints the team's
// calendar entries.
type Favorite struct {
	id        uuid.UUID
	userID    uuid.UUID
	teamID    uuid.UUID
	color     *string
	createdAt time.Time
}

func NewFavorite(userID, teamID uuid.UUID, color *string) (*Favorite, error) {
	if color != nil && !colorPattern.MatchString(*color) {
		return nil, ErrInvalidColor
	}
	return &Favorite{
		id:     uuid.New(),
		userID: userID,
		teamID: teamID,
		color:  color,
	}, nil
}

func ReconstructFavorite(id, userID, teamID uuid.UUID, color *string, createdAt time.Time) *Favorite {
	return &Favorite{
		id:        id,
		userID:    userID,
		teamID:    teamID,
		color:     color,
		createdAt: createdAt,
	}
}

func (f *Favorite) ID() uuid.UUID        { return f.id }
func (f *Favorite) UserID() uuid.UUID    { return f.userID }
func (f *Favorite) TeamID() uuid.UUID    { return f.teamID }
func (f *Favorite) Color() *string       { return f.color }
func (f *Favorite) CreatedAt() time.Time { return f.createdAt }
