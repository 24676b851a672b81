package models

// Protocol identifies the transport a dataflow travels over.
type Protocol string

const (
	ProtocolHTTP      Protocol = "HTTP"
	ProtocolHTTPS     Protocol = "HTTPS"
	ProtocolGRPC      Protocol = "gRPC"
	ProtocolTCP       Protocol = "TCP"
	ProtocolUDP       Protocol = "UDP"
	ProtocolWebSocket Protocol = "WebSocket"
	ProtocolSQL       Protocol = "SQL"
	ProtocolAMQP      Protocol = "AMQP"
	ProtocolMQTT      Protocol = "MQTT"
	ProtocolSSH       Protocol = "SSH"
	ProtocolSMTP      Protocol = "SMTP"
	ProtocolDNS       Protocol = "DNS"
)

// IsValid checks if the Protocol is a known, valid value
func (p Protocol) IsValid() bool {
	switch p {
	case ProtocolHTTP, ProtocolHTTPS, ProtocolGRPC, ProtocolTCP, ProtocolUDP,
		ProtocolWebSocket, ProtocolSQL, ProtocolAMQP, ProtocolMQTT,
		ProtocolSSH, ProtocolSMTP, ProtocolDNS:
		return true
	}
	return false
}

// String returns the string representation of the Protocol
func (p Protocol) String() string {
	return string(p)
}

// AllProtocols returns a slice of all valid Protocol values
func AllProtocols() []Protocol {
	return []Protocol{
		ProtocolHTTP, ProtocolHTTPS, ProtocolGRPC, ProtocolTCP, ProtocolUDP,
		ProtocolWebSocket, ProtocolSQL, ProtocolAMQP, ProtocolMQTT,
		ProtocolSSH, ProtocolSMTP, ProtocolDNS,
	}
}
