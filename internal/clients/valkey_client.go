package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

const (
	profileKeyPrefix   = "profiler:profile:"
	rateLimitKeyPrefix = "profiler:ratelimit:"
	profileCacheTTL    = 24 * time.Hour
)

type ValkeyClient struct {
	Client valkey.Client
}

// InitValkey connects to valkey using VALKEY_INIT_ADDRESS, VALKEY_PASSWORD
// and VALKEY_TLS from the environment. It is optional infrastructure: the
// service runs with an in-memory limiter and no profile cache when the
// address is unset.
func InitValkey() (*ValkeyClient, error) {
	var initErr error
	valkeyOnce.Do(func() {
		valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
		valkeyPassword := os.Getenv("VALKEY_PASSWORD")
		useTLS := os.Getenv("VALKEY_TLS") == "true"

		opts := valkey.ClientOption{
			InitAddress:      []string{valkeyAddr},
			Password:         valkeyPassword,
			ConnWriteTimeout: 5 * time.Second,
			SelectDB:         0,
		}
		if useTLS {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
		}

		client, err := valkey.NewClient(opts)
		if err != nil {
			initErr = fmt.Errorf("[ValkeyClient] failed to create Valkey client: %w", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
			initErr = fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", res.Error())
			return
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{Client: client}
	})
	if initErr != nil {
		return nil, initErr
	}
	return valkeyInstance, nil
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// IncrWindow increments the fixed-window counter for key and arms the window
// expiry on first increment. It returns the count after the increment.
func (vc *ValkeyClient) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := rateLimitKeyPrefix + key
	completed := []valkey.Completed{
		vc.Client.B().Incr().Key(fullKey).Build(),
		vc.Client.B().Expire().Key(fullKey).Seconds(int64(window.Seconds())).Nx().Build(),
	}

	responses := vc.DoMultiWithRetry(ctx, completed, 3)
	for _, res := range responses {
		if err := res.Error(); err != nil {
			return 0, err
		}
	}
	return responses[0].AsInt64()
}

// StoreProfile caches a serialized profile for the subject for a day so a
// repeated request does not re-run the external collaborators.
func (vc *ValkeyClient) StoreProfile(ctx context.Context, subject string, payload []byte) error {
	completed := vc.Client.B().Set().
		Key(profileKeyPrefix + subject).
		Value(string(payload)).
		Ex(profileCacheTTL).
		Build()

	if err := vc.DoWithRetry(ctx, completed, 3).Error(); err != nil {
		return fmt.Errorf("[ValkeyClient] failed to cache profile: %w", err)
	}

	slog.Info("[ValkeyClient] Cached profile",
		slog.String("subject", subject))
	return nil
}

// GetProfile returns the cached profile payload for the subject, if any.
func (vc *ValkeyClient) GetProfile(ctx context.Context, subject string) ([]byte, bool) {
	res := vc.DoWithRetry(ctx, vc.Client.B().Get().Key(profileKeyPrefix+subject).Build(), 3)
	payload, err := res.AsBytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		results = vc.Client.DoMulti(ctx, completed...)
		hasErr := false
		for _, r := range results {
			if r.Error() != nil && isConnectionError(r.Error()) {
				hasErr = true
				slog.Warn("[ValkeyClient] DoMulti failed",
					slog.Int("attempt", i+1),
					slog.String("error", r.Error().Error()))
				break
			}
		}
		if !hasErr {
			break
		}
		time.Sleep(time.Millisecond * 250)
	}

	return results
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil || !isConnectionError(result.Error()) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
