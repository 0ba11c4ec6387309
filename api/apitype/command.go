package apitype

// Command is the payload published to a topic.
type Command interface{}
