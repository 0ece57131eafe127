package wsclient

import (
	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// Reader is the read side of *websocket.Conn.
type Reader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

func NewClient(assessmentID string, c Reader) *WsClient {
	return &WsClient{
		conn:         c,
		assessmentID: assessmentID,
	}
}

type WsClient struct {
	conn         Reader
	assessmentID string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch reads until the connection closes, the socket is push only so incoming messages are dropped.
func (c *WsClient) Dispatch() {
	logger := log.WithField("assessment_id", c.assessmentID)
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Error("ошибка получения сообщения")
			}
			return
		}
		logger.WithField("ws_message_size", len(data)).Debug("входящее сообщение websocket пропущено")
	}
}
