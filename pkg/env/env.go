package env

import "os"

const (
	RedisPassWordKey = "DOTS_AND_BOXES_REDIS_PASSWORD"
	MongoPassWordKey = "DOTS_AND_BOXES_MONGO_PASSWORD"
)

var (
	RedisPassWord = os.Getenv(RedisPassWordKey)
	MongoPassWord = os.Getenv(MongoPassWordKey)
)

// Or returns v, or fallback when v is empty.
func Or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
