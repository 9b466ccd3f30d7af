package i

// Actuator forwards single-byte commands to an external device. Send must not block.
type Actuator interface {
	Send(cmd byte) error
	Close() error
}
