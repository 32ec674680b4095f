package team

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("team name cannot be empty")

type Team struct {
	id          uuid.UUID
	name        string
	ownerID     uuid.UUID
	genre       *string
	description *string
	imageURL    *string
	snsLink     *string
	createdAt   time.Time
}

func NewTeam(name string, ownerID uuid.UUID, genre, description, imageURL, snsLink *string) (*Team, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	return &Team{
		id:          uuid.New(),
		name:        trimmed,
		ownerID:     ownerID,
		genre:       genre,
		description: description,
		imageURL:    imageURL,
		snsLink:     snsLink,
	}, nil
}

func ReconstructTeam(
	id uuid.UUID,
	name string,
	ownerID uuid.UUID,
	genre, description, imageURL, snsLink *string,
	createdAt time.Time,
) *Team {
	return &Team{
		id:          id,
		name:        name,
		ownerID:     ownerID,
		genre:       genre,
		description: description,
		imageURL:    imageURL,
		snsLink:     snsLink,
		createdAt:   createdAt,
	}
}

// NameKey normalizes a performer name for matching against time-slot
// entries, which historically carried free-text names instead of team IDs.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func (t *Team) MatchesName(name string) bool {
	return NameKey(t.name) == NameKey(name)
}

func (t *Team) ID() uuid.UUID        { return t.id }
func (t *Team) Name() string         { return t.name }
func (t *Team) OwnerID() uuid.UUID   { return t.ownerID }
func (t *Team) Genre() *string       { return t.genre }
func (t *Team) Description() *string { return t.description }
func (t *Team) ImageURL() *string    { return t.imageURL }
func (t *Team) SNSLink() *string     { return t.snsLink }
func (t *Team) CreatedAt() time.Time { return t.createdAt }
