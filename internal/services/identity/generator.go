package identity

import (
	"github.com/mcoot/gamelobby-go/internal/dependencies/random"
	"github.com/mcoot/gamelobby-go/internal/model"
)

// Generator produces the two kinds of identifiers the lobby hands out:
// shareable game codes and unguessable capability tokens.
type Generator struct {
	random random.Random
}

// NewGenerator creates a Generator backed by the given entropy source
func NewGenerator(rnd random.Random) *Generator {
	return &Generator{random: rnd}
}

// GameCode returns six independent uniform decimal digits. Leading zeros
// are kept, so "003981" is a possible result. Codes are not unique on
// their own; the registry checks them against live sessions.
func (g *Generator) GameCode() model.GameCode {
	buf := make([]byte, model.GameCodeLength)
	for i := range buf {
		buf[i] = byte('0' + g.random.Intn(10))
	}
	return model.GameCode(buf)
}

// Token returns one uniform draw from the full uint32 range. Admin tokens,
// player tokens and player ids all come from this single pool; collisions
// are accepted as negligible and are not checked.
func (g *Generator) Token() model.Token {
	return model.Token(g.random.Uint32())
}

// PlayerID returns a fresh player id from the shared uint32 pool
func (g *Generator) PlayerID() model.PlayerID {
	return model.PlayerID(g.random.Uint32())
}
