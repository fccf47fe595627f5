package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nanoedit/nanoedit/common"
	"github.com/nanoedit/nanoedit/common/config"
	"github.com/nanoedit/nanoedit/common/logger"
)

var timeFormat = "2006-01-02T15:04:05.000Z"

var inMemoryRateLimiter common.InMemoryRateLimiter

func rateLimitExceeded(c *gin.Context, maxRequestNum int, duration int64, remaining int) {
	c.Writer.Header().Set("X-Ratelimit-Limit-Requests", strconv.Itoa(maxRequestNum))
	c.Writer.Header().Set("X-Ratelimit-Remaining-Requests", strconv.Itoa(remaining))
	abortWithMessage(c, http.StatusTooManyRequests,
		fmt.Sprintf("Rate limit reached for %s: limit %d per %d seconds", c.ClientIP(), maxRequestNum, duration))
}

func redisRateLimiter(c *gin.Context, maxRequestNum int, duration int64, mark string) {
	ctx := context.Background()
	rdb := common.RDB
	key := "rateLimit:" + mark + "_" + c.ClientIP()
	listLength, err := rdb.LLen(ctx, key).Result()
	if err != nil {
		logger.SysError("redis rate limiter failed: " + err.Error())
		c.Status(http.StatusInternalServerError)
		c.Abort()
		return
	}
	if listLength < int64(maxRequestNum) {
		rdb.LPush(ctx, key, time.Now().Format(timeFormat))
		rdb.Expire(ctx, key, time.Duration(duration)*time.Second)
		return
	}
	oldTimeStr, _ := rdb.LIndex(ctx, key, -1).Result()
	oldTime, err := time.Parse(timeFormat, oldTimeStr)
	if err != nil {
		logger.SysError("redis rate limiter failed: " + err.Error())
		c.Status(http.StatusInternalServerError)
		c.Abort()
		return
	}
	// time.Since may return a negative number on some platforms, compare
	// against a freshly formatted timestamp instead
	nowTime, _ := time.Parse(timeFormat, time.Now().Format(timeFormat))
	if int64(nowTime.Sub(oldTime).Seconds()) < duration {
		rdb.Expire(ctx, key, time.Duration(duration)*time.Second)
		rateLimitExceeded(c, maxRequestNum, duration, 0)
		return
	}
	rdb.LPush(ctx, key, time.Now().Format(timeFormat))
	rdb.LTrim(ctx, key, 0, int64(maxRequestNum-1))
	rdb.Expire(ctx, key, time.Duration(duration)*time.Second)
}

func memoryRateLimiter(c *gin.Context, maxRequestNum int, duration int64, mark string) {
	key := mark + c.ClientIP()
	allowed, remaining := inMemoryRateLimiter.Request(key, maxRequestNum, duration)
	if !allowed {
		rateLimitExceeded(c, maxRequestNum, duration, remaining)
		return
	}
	c.Writer.Header().Set("X-Ratelimit-Limit-Requests", strconv.Itoa(maxRequestNum))
	c.Writer.Header().Set("X-Ratelimit-Remaining-Requests", strconv.Itoa(remaining))
}

func rateLimitFactory(maxRequestNum int, duration int64, mark string) func(c *gin.Context) {
	if maxRequestNum == 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if common.RedisEnabled {
		return func(c *gin.Context) {
			redisRateLimiter(c, maxRequestNum, duration, mark)
		}
	}
	// It's safe to call multi times.
	inMemoryRateLimiter.Init(config.RateLimitKeyExpirationDuration)
	return func(c *gin.Context) {
		memoryRateLimiter(c, maxRequestNum, duration, mark)
	}
}

func GlobalAPIRateLimit() func(c *gin.Context) {
	return rateLimitFactory(config.GlobalApiRateLimitNum, config.GlobalApiRateLimitDuration, "GA")
}

func EditRateLimit() func(c *gin.Context) {
	return rateLimitFactory(config.EditRateLimitNum, config.EditRateLimitDuration, "ED")
}

func TextRateLimit() func(c *gin.Context) {
	return rateLimitFactory(config.TextRateLimitNum, config.TextRateLimitDuration, "TX")
}
