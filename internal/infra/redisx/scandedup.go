package redisx

import (
	"context"
	"time"

	"stagepass/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const scanDedupWindow = 5 * time.Second

// ScanDeduper collapses repeated QR submissions. The entrance console fires
// one request per decoded camera frame, so a single pass arrives several
// times within the window.
type ScanDeduper struct {
	client *redis.Client
}

func NewScanDeduper(client *redis.Client) *ScanDeduper {
	return &ScanDeduper{client: client}
}

func (d *ScanDeduper) Acquire(ctx context.Context, code string) (bool, error) {
	ok, err := d.client.SetNX(ctx, "scan:"+code, 1, scanDedupWindow).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to acquire scan dedup key")
	}
	return ok, nil
}
