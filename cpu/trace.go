package cpu

import (
	"fmt"
	"os"
)

// trace emits one diagnostic line if the CPU's debug level is at least
// level. The installed handler, if any, takes precedence over the byte
// sink; if neither is configured and the level is non-zero, os.Stdout is
// the default destination.
func (c *CPU) trace(level uint, format string, args ...interface{}) {
	if c.debugLevel < level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	line := append([]byte(msg), '\n')

	if c.debugHandler != nil {
		c.debugHandler(c, line)
		return
	}

	sink := c.debugSink
	if sink == nil {
		sink = os.Stdout
	}
	sink.Write(line)
}

// traceDetail is the level 3+ variant. Step uses it for one PC line per
// step; register writes and effective addresses are not traced.
func (c *CPU) traceDetail(level uint, format string, args ...interface{}) {
	c.trace(level, format, args...)
}
