// pkg/memcache/otp_codes.go
package mem

import (
	"sync"
	"time"
)

type OtpStore interface {
	Set(email string, hashedCode string, ttl time.Duration)

	// Peek reads the stored hash without consuming it, so a mistyped code
	// doesn't burn the real one. Returns false if missing or expired.
	Peek(email string) (string, bool)

	// Consume removes the code (single-use). Returns the stored hash, or ""
	// if missing/expired.
	Consume(email string) string
}

type entry struct {
	hashedCode string
	expiresAt  time.Time
}

type OtpCodes struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewOtpCodes() *OtpCodes {
	return &OtpCodes{
		data: make(map[string]entry),
	}
}

func (s *OtpCodes) Set(email string, hashedCode string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[email] = entry{
		hashedCode: hashedCode,
		expiresAt:  time.Now().Add(ttl),
	}
}

func (s *OtpCodes) Peek(email string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[email]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.hashedCode, true
}

func (s *OtpCodes) Consume(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[email]
	if !ok {
		return ""
	}
	delete(s.data, email)
	if time.Now().After(e.expiresAt) {
		return ""
	}
	return e.hashedCode
}
