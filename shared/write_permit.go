package shared

// WriteScope names an entity family whose rows may only be written by its
// lifecycle engine.
type WriteScope string

const (
	WriteScopeIncident WriteScope = "incident"
	WriteScopeRisk     WriteScope = "risk"
	WriteScopeForm     WriteScope = "form"
)

// WritePermit is handed from a lifecycle engine to the repository. The zero
// value permits nothing.
type WritePermit struct {
	scopes []WriteScope
}

func GrantWrite(scopes ...WriteScope) WritePermit {
	return WritePermit{scopes: scopes}
}

func (p WritePermit) Allows(scope WriteScope) bool {
	for _, s := range p.scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// Require returns ErrWriteNotPermitted unless the permit covers scope.
func (p WritePermit) Require(scope WriteScope) error {
	if !p.Allows(scope) {
		return ErrWriteNotPermitted
	}
	return nil
}
