package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// HMACSignatureService implements ports.SignatureService. Outbound alert
// webhooks carry "t=<unix>,v1=<hex>" where v1 is HMAC-SHA256 over
// "<unix>.<body>", so receivers can reject replays as well as forgeries.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign returns the signature header for payload sent at the given time.
func (s *HMACSignatureService) Sign(secretKey string, payload []byte, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	return "t=" + ts + ",v1=" + digest(secretKey, ts, payload)
}

// Verify checks a header produced by Sign. Headers older or newer than
// tolerance relative to now are rejected even when the MAC matches.
func (s *HMACSignatureService) Verify(secretKey string, payload []byte, header string, now time.Time, tolerance time.Duration) bool {
	var ts, sig string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts = v
		case "v1":
			sig = v
		}
	}
	if ts == "" || sig == "" {
		return false
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return false
	}
	if age := now.Sub(time.Unix(unix, 0)); age > tolerance || age < -tolerance {
		return false
	}
	return hmac.Equal([]byte(digest(secretKey, ts, payload)), []byte(sig))
}

func digest(secretKey, ts string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(ts))
	mac.Write([]byte{'.'})
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
