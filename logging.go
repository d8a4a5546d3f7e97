package iapx86

import "github.com/sirupsen/logrus"

// logger wraps a *logrus.Logger for the dispatch loop's optional debug
// trace. The core stays silent by default — decode anomalies are
// architecturally a no-op, not a host-visible error — this is a pure
// diagnostics hook, inert unless a host attaches one.
type logger struct {
	l *logrus.Logger
}

// newLogger wraps an existing *logrus.Logger, or builds a default one
// (leveled at Debug, the level of the per-step trace; undefined opcodes
// are logged at Error) if given nil.
func newLogger(l *logrus.Logger) *logger {
	if l == nil {
		l = logrus.New()
		l.SetLevel(logrus.DebugLevel)
	}
	return &logger{l: l}
}

// AttachLogger wires a logger into the dispatch loop. Pass nil to detach
// (the default state — no logging overhead beyond the nil check).
func (c *CPU) AttachLogger(l *logrus.Logger) {
	if l == nil {
		c.log = nil
		return
	}
	c.log = newLogger(l)
}

func (lg *logger) step(c *CPU, opcode uint8) {
	lg.l.WithFields(logrus.Fields{
		"cs": c.CS(), "ip": c.ip, "opcode": opcode,
	}).Debug("cpu step")
}

func (lg *logger) undefined(c *CPU, opcode uint8) {
	lg.l.WithFields(logrus.Fields{
		"cs": c.CS(), "ip": c.ip,
	}).Errorf("undefined opcode, %#02x", opcode)
}
