package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPService generates and verifies one-time codes backed by Redis.
type OTPService struct {
	redis      *redis.Client
	otpPrefix  string        // distinguishes OTP kinds, e.g. "otp:email"
	expiration time.Duration // lifetime of a generated code
}

type OTPServiceOption func(*OTPService)

func NewOTPService(redis *redis.Client, opts ...OTPServiceOption) *OTPService {
	s := &OTPService{
		redis:      redis,
		expiration: 10 * time.Minute,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithPrefix sets the Redis key prefix for stored codes.
func WithPrefix(prefix string) OTPServiceOption {
	return func(s *OTPService) {
		s.otpPrefix = prefix
	}
}

// GenerateOTP creates a six-digit code for the identifier and stores it in
// Redis. An existing unexpired code for the same identifier is overwritten.
func (s *OTPService) GenerateOTP(ctx context.Context, identifier string) (code string, createdAt time.Time, expiresAt time.Time, err error) {
	otp, err := generateSixDigitOTP()
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}

	otpKey := fmt.Sprintf("%s:%s", s.otpPrefix, identifier)

	now := time.Now()
	expiresAt = now.Add(s.expiration)

	err = s.redis.Set(ctx, otpKey, otp, s.expiration).Err()
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}

	return otp, now, expiresAt, nil
}

// VerifyOTP checks the provided code against the stored one. A correct code is
// deleted from Redis so it cannot be replayed.
func (s *OTPService) VerifyOTP(ctx context.Context, identifier, providedOTP string) (bool, error) {
	if len(providedOTP) != 6 {
		return false, fmt.Errorf("invalid OTP format")
	}

	otpKey := fmt.Sprintf("%s:%s", s.otpPrefix, identifier)

	storedOTP, err := s.redis.Get(ctx, otpKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, fmt.Errorf("no OTP found or expired")
		}
		return false, fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP == providedOTP {
		s.redis.Del(ctx, otpKey)
		return true, nil
	}

	return false, fmt.Errorf("invalid OTP")
}

func generateSixDigitOTP() (string, error) {
	maxInt := big.NewInt(999999)
	minInt := big.NewInt(100000)
	diff := new(big.Int).Sub(maxInt, minInt)

	n, err := rand.Int(rand.Reader, diff)
	if err != nil {
		return "", err
	}

	n.Add(n, minInt)
	return n.String(), nil
}
