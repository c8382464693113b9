package conversation

// Sender classifies who produced a turn.
type Sender string

const (
	SenderSelf    Sender = "self"
	SenderPartner Sender = "partner"
)

// Turn is one exchange as shown in the session history. Turns live in
// memory for the duration of a session; the durable record is the
// ConversationLog entry derived from them.
type Turn struct {
	Sender        Sender  `json:"sender"`
	Original      string  `json:"original"`
	Translated    string  `json:"translated"`
	Confidence    float64 `json:"confidence,omitempty"`
	HasConfidence bool    `json:"has_confidence"`
	Audio         []byte  `json:"-"`
	Note          string  `json:"note,omitempty"`
	Sequence      int     `json:"sequence"`
}

// Session holds the in-memory conversation history for one active
// user session. It is owned by that session and never shared.
type Session struct {
	turns   []Turn
	nextSeq int
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// append stamps the turn with the next sequence number and records it.
func (s *Session) append(turn Turn) Turn {
	turn.Sequence = s.nextSeq
	s.nextSeq++
	s.turns = append(s.turns, turn)
	return turn
}

// Turns returns the session history in order.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// TurnsBySender returns the history filtered to one sender, in order.
func (s *Session) TurnsBySender(sender Sender) []Turn {
	var out []Turn
	for _, turn := range s.turns {
		if turn.Sender == sender {
			out = append(out, turn)
		}
	}
	return out
}

// Len returns the number of turns in the session.
func (s *Session) Len() int {
	return len(s.turns)
}
