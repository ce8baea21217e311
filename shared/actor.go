package shared

import (
	"github.com/l3montree-dev/ohsms/database/models"
)

// Actor is whoever triggers an operation. The zero value is anonymous.
type Actor struct {
	UserID      string
	DisplayName string
	IPAddress   string
}

func (a Actor) IsAnonymous() bool {
	return a.UserID == ""
}

func (a Actor) Label() string {
	switch {
	case a.IsAnonymous():
		return "anonymous"
	case a.DisplayName != "":
		return a.DisplayName
	}
	return a.UserID
}

func (a Actor) IDPtr() *string {
	if a.IsAnonymous() {
		return nil
	}
	return Ptr(a.UserID)
}

func (a Actor) IPPtr() *string {
	if a.IPAddress == "" {
		return nil
	}
	return Ptr(a.IPAddress)
}

// AuditEntry is one row for the audit log writer.
type AuditEntry struct {
	Actor       Actor
	Action      models.AuditAction
	ModelName   string
	ObjectID    string
	Description string
}
