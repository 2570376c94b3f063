package domain

type IdentifierKind int

const (
	IdentifierUsername IdentifierKind = iota
	IdentifierEmail
)

func (k IdentifierKind) String() string {
	if k == IdentifierEmail {
		return "email"
	}
	return "username"
}

// Identifier is the submitted login name, classified once as either an
// email address or a username.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

func EmailIdentifier(v string) Identifier {
	return Identifier{Kind: IdentifierEmail, Value: v}
}

func UsernameIdentifier(v string) Identifier {
	return Identifier{Kind: IdentifierUsername, Value: v}
}
