package pkg

import (
	"os"

	"github.com/go-redis/redis/v8"
	"golang.org/x/net/context"
)

var (
	Rdb *redis.Client
	Ctx = context.Background()
)

// InitRedis conecta ao Redis quando REDIS_URL está configurado.
// Sem REDIS_URL o cache fica desabilitado (Rdb == nil) e os serviços
// seguem funcionando sem cache.
func InitRedis() {
	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		return
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := Rdb.Ping(Ctx).Result(); err != nil {
		panic("Não foi possível conectar ao Redis: " + err.Error())
	}
}
