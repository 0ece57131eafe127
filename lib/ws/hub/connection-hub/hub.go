package connectionhub

import (
	"sync"

	"fntp-backend/lib/metrics"
	wsmodels "fntp-backend/models/ws"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Subscribe(assessmentID string, conn Conn) (sessionID string)
	Unsubscribe(assessmentID, sessionID string)
	SendMessage(msg wsmodels.ServerMessage)
	SubscriberCount(assessmentID string) int
}

var Instance Provider

func Init() {
	Instance = New()
}

func New() Provider {
	return &impl{
		clients: map[string]map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]map[string]clientSession // map[assessmentID]map[sessionID]
}

func (i *impl) Subscribe(assessmentID string, conn Conn) string {
	i.mu.Lock()
	defer i.mu.Unlock()
	sessionID := uuid.NewString()
	if i.clients[assessmentID] == nil {
		i.clients[assessmentID] = map[string]clientSession{}
	}
	i.clients[assessmentID][sessionID] = newSession(conn)
	metrics.WebsocketSubscribers.Inc()
	return sessionID
}

func (i *impl) Unsubscribe(assessmentID, sessionID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sessions, ok := i.clients[assessmentID]
	if !ok {
		return
	}
	sess, ok := sessions[sessionID]
	if !ok {
		return
	}
	delete(sessions, sessionID)
	metrics.WebsocketSubscribers.Dec()
	if len(sessions) == 0 {
		delete(i.clients, assessmentID)
	}
	sess.stop()
}

// SendMessage never blocks: a subscriber with a full buffer misses the message.
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for sessionID, sess := range i.clients[msg.AssessmentID] {
		select {
		case sess.sendCh <- msg:
		default:
			log.
				WithField("assessment_id", msg.AssessmentID).
				WithField("session_id", sessionID).
				Warn("буфер сессии переполнен, сообщение пропущено")
		}
	}
}

func (i *impl) SubscriberCount(assessmentID string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.clients[assessmentID])
}
