package domain

type Message struct {
	Key   []byte
	Value []byte
}

type MessagePublisher interface {
	Publish(topic string, msgs ...Message) error
}
