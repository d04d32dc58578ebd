package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/skip2/go-qrcode"

	"github.com/Blake-Bird/SGA2029/internal/config"
	"github.com/Blake-Bird/SGA2029/internal/nav"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

// ErrCheckinUnavailable is returned when no Redis backend is connected;
// check-in codes are single-use and need shared expiring storage.
var ErrCheckinUnavailable = errors.New("check-in codes require redis")

// QRService issues single-use event check-in codes. An officer
// generates a code at the door; the QR encodes the code together with
// the event's canonical page link, and scanning it once consumes it.
type QRService struct {
	redis *redis.Client
	store *seed.Store
	cfg   *config.CheckinConfig
}

func NewQRService(redisClient *redis.Client, store *seed.Store, cfg *config.CheckinConfig) *QRService {
	return &QRService{
		redis: redisClient,
		store: store,
		cfg:   cfg,
	}
}

// GenerateCheckinCode creates and stores a code for the event, and
// renders it as a QR PNG. Returns the opaque code and the base64 PNG.
func (s *QRService) GenerateCheckinCode(ctx context.Context, eventID, memberID string) (string, string, error) {
	if s.redis == nil {
		return "", "", ErrCheckinUnavailable
	}

	ev, ok := s.store.EventByID(eventID)
	if !ok {
		return "", "", fmt.Errorf("unknown event %q", eventID)
	}

	// Cap outstanding codes per event so a stuck client cannot flood
	// the door with live codes.
	countKey := fmt.Sprintf("checkin_count:%s", ev.ID)
	count, err := s.redis.Incr(ctx, countKey).Result()
	if err != nil {
		return "", "", err
	}
	if count == 1 {
		s.redis.Expire(ctx, countKey, s.cfg.CodeTTL)
	}
	if count > int64(s.cfg.MaxCodesPerEvent) {
		return "", "", fmt.Errorf("too many open check-in codes for event %q", ev.ID)
	}

	payload := map[string]any{
		"eventId":   ev.ID,
		"href":      nav.Route{Page: nav.PageEventDetail, ID: ev.ID}.Href(),
		"issuedBy":  memberID,
		"timestamp": time.Now().Unix(),
		"nonce":     s.generateNonce(),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}

	code := base64.URLEncoding.EncodeToString(jsonData)

	key := fmt.Sprintf("checkin:%s", code)
	if err := s.redis.Set(ctx, key, jsonData, s.cfg.CodeTTL).Err(); err != nil {
		return "", "", err
	}

	qr, err := qrcode.New(code, qrcode.Medium)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(s.cfg.ImageSize)); err != nil {
		return "", "", err
	}

	return code, base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ConsumeCheckinCode validates a scanned code and deletes it so it
// cannot be replayed.
func (s *QRService) ConsumeCheckinCode(ctx context.Context, code string) (map[string]any, error) {
	if s.redis == nil {
		return nil, ErrCheckinUnavailable
	}

	key := fmt.Sprintf("checkin:%s", code)

	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("invalid or expired check-in code")
	}
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	s.redis.Del(ctx, key)

	return result, nil
}

func (s *QRService) generateNonce() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
