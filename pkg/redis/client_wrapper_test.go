package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func TestPingClient_WrapperExecutes(t *testing.T) {
	c := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := pingClient(ctx, c); err == nil {
		t.Fatal("expected ping error for invalid redis endpoint")
	}
}

func TestInit_PingFailureSurfaces(t *testing.T) {
	orig := pingClient
	t.Cleanup(func() { pingClient = orig })

	pingClient = func(context.Context, *goredis.Client) error {
		return context.DeadlineExceeded
	}

	if err := Init("redis://127.0.0.1:6379", ""); err == nil {
		t.Fatal("expected init to fail when ping fails")
	}
}
