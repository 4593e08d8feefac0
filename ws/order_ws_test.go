package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pos-backend/entity"
	"pos-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestOrderHubBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewOrderHub(logger.Discard())
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/orders/ws", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	order := &entity.Order{CustomerName: "Ali", Status: entity.OrderPending}
	order.ID = 42
	hub.Publish("order.created", order)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev OrderEvent
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read: %v", err)
	}
	if ev.Type != "order.created" || ev.Order == nil || ev.Order.ID != 42 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestPublishDoesNotBlockWithoutRunner(t *testing.T) {
	hub := NewOrderHub(logger.Discard())
	order := &entity.Order{}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish("order.created", order)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked with a full queue")
	}
}
