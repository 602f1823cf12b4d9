// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/session"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// Sessions carry an identity, so they are encrypted at rest like any other
// cached record holding personal data.

func CacheSession(ctx context.Context, s *session.Session) error {
	sessionJSON, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	encryptedSession, err := encrypt(sessionJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt session: %w", err)
	}

	key := fmt.Sprintf("session:%s", s.ID)
	ttl := viper.GetDuration("auth.sessionTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encryptedSession), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}

	logger.Debug("Session cached successfully", zap.String("sessionID", s.ID))
	return nil
}

func GetCachedSession(ctx context.Context, sessionID string) (*session.Session, error) {
	key := fmt.Sprintf("session:%s", sessionID)
	encryptedSessionStr, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Session not found in cache", zap.String("sessionID", sessionID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %w", err)
	}

	encryptedSession, err := base64.StdEncoding.DecodeString(encryptedSessionStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	sessionJSON, err := decrypt(encryptedSession)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt session: %w", err)
	}

	var s session.Session
	err = json.Unmarshal(sessionJSON, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	logger.Debug("Session retrieved from cache", zap.String("sessionID", sessionID))
	return &s, nil
}

func DeleteCachedSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf("session:%s", sessionID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete session from cache: %w", err)
	}
	logger.Debug("Session deleted from cache", zap.String("sessionID", sessionID))
	return nil
}

func CachePendingLogin(ctx context.Context, p *session.PendingLogin) error {
	pendingJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal pending login: %w", err)
	}

	encryptedPending, err := encrypt(pendingJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt pending login: %w", err)
	}

	key := fmt.Sprintf("pending:%s", p.Token)
	ttl := viper.GetDuration("auth.pendingTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encryptedPending), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache pending login: %w", err)
	}

	logger.Debug("Pending login cached successfully", zap.String("token", p.Token))
	return nil
}

func GetCachedPendingLogin(ctx context.Context, token string) (*session.PendingLogin, error) {
	key := fmt.Sprintf("pending:%s", token)
	encryptedPendingStr, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Pending login not found in cache", zap.String("token", token))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get pending login from cache: %w", err)
	}

	encryptedPending, err := base64.StdEncoding.DecodeString(encryptedPendingStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pending login: %w", err)
	}

	pendingJSON, err := decrypt(encryptedPending)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt pending login: %w", err)
	}

	var p session.PendingLogin
	err = json.Unmarshal(pendingJSON, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending login: %w", err)
	}

	logger.Debug("Pending login retrieved from cache", zap.String("token", token))
	return &p, nil
}

func DeleteCachedPendingLogin(ctx context.Context, token string) error {
	key := fmt.Sprintf("pending:%s", token)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete pending login from cache: %w", err)
	}
	logger.Debug("Pending login deleted from cache", zap.String("token", token))
	return nil
}

// The anonymized analytics summary holds no identifiers, so it is cached as
// plain JSON.

func CacheAnalytics(ctx context.Context, data *model.AnonymizedAnalyticsData) error {
	if RedisClient == nil {
		return fmt.Errorf("redis not initialized")
	}
	analyticsJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics: %w", err)
	}

	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, "analytics:summary", analyticsJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache analytics: %w", err)
	}

	logger.Debug("Analytics summary cached successfully")
	return nil
}

func GetCachedAnalytics(ctx context.Context) (*model.AnonymizedAnalyticsData, error) {
	if RedisClient == nil {
		return nil, fmt.Errorf("redis not initialized")
	}
	analyticsJSON, err := RedisClient.Get(ctx, "analytics:summary").Result()
	if err == redis.Nil {
		logger.Debug("Analytics summary not found in cache")
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get analytics from cache: %w", err)
	}

	var data model.AnonymizedAnalyticsData
	err = json.Unmarshal([]byte(analyticsJSON), &data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal analytics: %w", err)
	}

	logger.Debug("Analytics summary retrieved from cache")
	return &data, nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
