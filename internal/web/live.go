package web

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/nicodeveloper97/portfolio/internal/carousel"
	"github.com/nicodeveloper97/portfolio/internal/session"
	"github.com/nicodeveloper97/portfolio/internal/view"
)

const liveWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{}

// liveMessage is pushed to the browser for every carousel transition.
type liveMessage struct {
	Type       string              `json:"type"`
	Transition carousel.Transition `json:"transition"`
	State      view.State          `json:"state"`
	HTML       string              `json:"html"`
}

// live streams transitions of the session's carousel. While the channel is
// open the session is not reaped; it is unmounted when the browser closes
// the channel.
func (s *Server) live(c *gin.Context) {
	sess := currentSession(c)

	// Subscribe first so no transition slips by during the handshake.
	events, cancel := sess.Carousel.Subscribe()
	defer cancel()
	detach := s.sessions.Attach(sess)
	defer detach()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("live: websocket read: %v", err)
				}
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			s.endSession(sess)
			return
		case tr, ok := <-events:
			if !ok {
				// Unmounted elsewhere.
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"),
					time.Now().Add(liveWriteWait))
				return
			}
			msg, err := s.liveMessage(sess, tr)
			if err != nil {
				log.Printf("live: %v", err)
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("live: websocket write: %v", err)
				s.endSession(sess)
				return
			}
		}
	}
}

func (s *Server) liveMessage(sess *session.Session, tr carousel.Transition) (liveMessage, error) {
	snap := carousel.Snapshot{ActiveIndex: tr.To, Direction: tr.Direction}
	th := sess.Theme.Current()

	html, err := s.renderFragment("projects.html", s.site.Carousel(sess.ID, snap, th))
	if err != nil {
		return liveMessage{}, err
	}
	return liveMessage{
		Type:       "transition",
		Transition: tr,
		State:      view.NewState(snap, th),
		HTML:       html,
	}, nil
}

func (s *Server) endSession(sess *session.Session) {
	// ErrNotFound just means another path got there first.
	_ = s.sessions.Unmount(sess.ID)
}
