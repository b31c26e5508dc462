package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gomodule/redigo/redis"

	. "forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/user"
)

const (
	redisNS = "forumSessions"

	sessionTTL = 90 * 24 * time.Hour
	// Sessions expiring sooner than this are prolonged on use.
	prolongBelow = 24 * time.Hour
)

type (
	sessionKey string

	// Pool hands out Redis connections; *redis.Pool satisfies it.
	Pool interface {
		Get() redis.Conn
	}

	SessionManager struct {
		secret []byte
		pool   Pool
		now    func() time.Time
	}

	jwtClaims struct {
		User user.User `json:"user"`
		jwt.StandardClaims
	}
)

const SessionKey sessionKey = "authenticatedUser"

var (
	ErrNoAuth  = fmt.Errorf("sessions: no session found: %w", ErrUnauthorized)
	ErrExpired = fmt.Errorf("sessions: session has expired: %w", ErrUnauthorized)
)

func NewSessionManager(secret string, pool Pool) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		pool:   pool,
		now:    time.Now,
	}
}

// NewRedisPool builds the redigo pool used for session storage.
func NewRedisPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func userKey(userId int64) string {
	return redisNS + ":" + strconv.FormatInt(userId, 10)
}

// UserFromToken returns the user of a valid JWT whose session is still
// alive in Redis.
func (sm *SessionManager) UserFromToken(ctx context.Context, authHeader string) (*user.User, error) {
	if authHeader == "" {
		return nil, ErrNoAuth
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sessions: unexpected signing method %v", token.Header["alg"])
			}
			return sm.secret, nil
		})
	if err != nil {
		return nil, fmt.Errorf("sessions: bad token: %v: %w", err, ErrUnauthorized)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sessions: token is not valid: %w", ErrUnauthorized)
	}

	if err := sm.CheckRedis(ctx, claims.User.Id, claims.Id); err != nil {
		return nil, fmt.Errorf("sessions: Redis session is not valid: %w", err)
	}

	return &claims.User, nil
}

// CleanupUserSessions goes through all user sessions and removes expired ones.
func (sm *SessionManager) CleanupUserSessions(ctx context.Context, userId int64) error {
	conn := sm.pool.Get()
	defer conn.Close()

	sessions, err := redis.StringMap(conn.Do("HGETALL", userKey(userId)))
	if err != nil {
		return fmt.Errorf("sessions: can't HGETALL user sessions: %w", err)
	}

	nowTs := sm.now().Unix()
	for sessId, exp := range sessions {
		expTs, _ := strconv.ParseInt(exp, 10, 64)
		if nowTs > expTs {
			if _, err := conn.Do("HDEL", userKey(userId), sessId); err != nil {
				return fmt.Errorf("sessions: can't HDEL session %s: %w", sessId, err)
			}
			logger.Log(ctx).Infof("sessions: session %s removed (expired at %s)", sessId, exp)
		}
	}

	return nil
}

func (sm *SessionManager) CheckRedis(ctx context.Context, userId int64, sessionId string) error {
	conn := sm.pool.Get()
	defer conn.Close()

	expirationData, err := redis.Bytes(conn.Do("HGET", userKey(userId), sessionId))
	if errors.Is(err, redis.ErrNil) {
		return ErrNoAuth
	}
	if err != nil {
		return fmt.Errorf("sessions: can't HGET session: %w", err)
	}

	expiredTs, _ := strconv.ParseInt(string(expirationData), 10, 64)
	now := sm.now()
	if now.Unix() > expiredTs {
		return ErrExpired
	}

	// Keep active users logged in.
	if expiredTs-now.Unix() < int64(prolongBelow.Seconds()) {
		if err := sm.addToRedis(conn, userId, sessionId, now.Add(sessionTTL).Unix()); err != nil {
			return err
		}
		logger.Log(ctx).Debugf("sessions: session %s of user %d prolonged", sessionId, userId)
	}

	return nil
}

func (sm *SessionManager) addToRedis(conn redis.Conn, userId int64, sessionId string, exp int64) error {
	if _, err := conn.Do("HSET", userKey(userId), sessionId, exp); err != nil {
		return fmt.Errorf("sessions: failed HSET to Redis: %w", err)
	}
	return nil
}

func (sm *SessionManager) CreateToken(ctx context.Context, u *user.User) (string, error) {
	sessionID := RandStringRunes(10)
	now := sm.now()
	data := jwtClaims{
		User: user.User{Id: u.Id, Username: u.Username},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(sessionTTL).Unix(),
			IssuedAt:  now.Unix(),
			Id:        sessionID,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, data).SignedString(sm.secret)
	if err != nil {
		return "", fmt.Errorf("sessions: can't sign token: %w", err)
	}

	conn := sm.pool.Get()
	defer conn.Close()
	if err := sm.addToRedis(conn, u.Id, sessionID, data.ExpiresAt); err != nil {
		logger.Log(ctx).Errorf("sessions: failed add to redis: %v", err)
		return "", err
	}

	return token, nil
}

func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, SessionKey, u)
}

func GetAuthUser(ctx context.Context) (*user.User, error) {
	user, ok := ctx.Value(SessionKey).(*user.User)
	if !ok || user == nil {
		return nil, ErrNoAuth
	}
	return user, nil
}
