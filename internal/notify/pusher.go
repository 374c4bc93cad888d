package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"payout-bot/internal/domain"
)

const (
	depositEvent     = "deposit"
	handshakeTimeout = 10 * time.Second
	authTimeout      = 10 * time.Second
)

// PusherClient implementa Source sobre el protocolo websocket de Pusher.
// Cada suscripción abre su propia conexión al clúster y se autentica en
// el endpoint de notificaciones de la API con el token de la sesión.
type PusherClient struct {
	appKey  string
	cluster string
	authURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewPusherClient crea un cliente para el clúster y la API configurados.
func NewPusherClient(appKey, cluster, apiBaseURL string, logger *zap.Logger) *PusherClient {
	return &PusherClient{
		appKey:  appKey,
		cluster: cluster,
		authURL: strings.TrimRight(apiBaseURL, "/") + "/notifications/auth",
		client:  &http.Client{Timeout: authTimeout},
		logger:  logger,
	}
}

type pusherMessage struct {
	Event   string `json:"event"`
	Channel string `json:"channel,omitempty"`
	Data    string `json:"data,omitempty"`
}

// Subscribe abre la conexión, autentica el canal privado de la organización
// y entrega cada evento de depósito al handler.
func (p *PusherClient) Subscribe(organizationID, token string, handler DepositHandler) (Subscription, error) {
	channelName := "private-org-" + organizationID
	wsURL := fmt.Sprintf("wss://ws-%s.pusher.com/app/%s?protocol=7&client=payout-bot&version=1.0", p.cluster, p.appKey)

	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.Dial(wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pusher dial: %w", err)
	}

	socketID, err := awaitConnection(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	auth, err := p.authorize(socketID, channelName, token)
	if err != nil {
		conn.Close()
		return nil, err
	}

	subscribe := pusherMessage{Event: "pusher:subscribe"}
	data, _ := json.Marshal(map[string]string{"channel": channelName, "auth": auth})
	subscribe.Data = string(data)
	if err := conn.WriteJSON(subscribe); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pusher subscribe: %w", err)
	}

	sub := &pusherSubscription{conn: conn, done: make(chan struct{})}
	go p.readLoop(sub, channelName, handler)
	return sub, nil
}

// awaitConnection espera el evento de conexión y devuelve el socket_id.
func awaitConnection(conn *websocket.Conn) (string, error) {
	conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	defer conn.SetReadDeadline(time.Time{})

	for {
		var msg pusherMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return "", fmt.Errorf("pusher handshake: %w", err)
		}
		if msg.Event != "pusher:connection_established" {
			continue
		}
		var data struct {
			SocketID string `json:"socket_id"`
		}
		if err := json.Unmarshal([]byte(msg.Data), &data); err != nil {
			return "", fmt.Errorf("pusher handshake data: %w", err)
		}
		return data.SocketID, nil
	}
}

// authorize firma la suscripción al canal privado contra la API.
func (p *PusherClient) authorize(socketID, channelName, token string) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"socket_id":    socketID,
		"channel_name": channelName,
	})

	req, err := http.NewRequest(http.MethodPost, p.authURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("channel auth: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read auth response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("channel auth failed with status %d", resp.StatusCode)
	}

	var authResp struct {
		Auth string `json:"auth"`
	}
	if err := json.Unmarshal(respBody, &authResp); err != nil {
		return "", fmt.Errorf("unmarshal auth response: %w", err)
	}
	return authResp.Auth, nil
}

func (p *PusherClient) readLoop(sub *pusherSubscription, channelName string, handler DepositHandler) {
	for {
		var msg pusherMessage
		if err := sub.conn.ReadJSON(&msg); err != nil {
			select {
			case <-sub.done:
			default:
				p.logger.Warn("pusher read failed", zap.String("channel", channelName), zap.Error(err))
			}
			return
		}

		switch msg.Event {
		case "pusher:ping":
			_ = sub.conn.WriteJSON(pusherMessage{Event: "pusher:pong", Data: "{}"})
		case depositEvent:
			if msg.Channel != channelName {
				continue
			}
			var deposit domain.DepositNotification
			if err := json.Unmarshal([]byte(msg.Data), &deposit); err != nil {
				p.logger.Warn("decode deposit event failed", zap.String("channel", channelName), zap.Error(err))
				continue
			}
			handler(deposit)
		}
	}
}

type pusherSubscription struct {
	conn *websocket.Conn
	once sync.Once
	done chan struct{}
}

// Close cierra la conexión subyacente y detiene la entrega de eventos.
func (s *pusherSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		)
		err = s.conn.Close()
	})
	return err
}
