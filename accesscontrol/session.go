package accesscontrol

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/l3montree-dev/ohsms/shared"
	"github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type session struct {
	userID      string
	displayName string
}

var _ shared.AuthSession = session{}

func NewSession(userID, displayName string) session {
	return session{userID: userID, displayName: displayName}
}

func (s session) GetUserID() string {
	return s.userID
}

func (s session) GetDisplayName() string {
	return s.displayName
}

// NoSession is set for anonymous requests.
var NoSession = session{}

type oryIdentityClient struct {
	apiClient *client.APIClient
}

var _ shared.IdentityClient = oryIdentityClient{}

func NewOryIdentityClient(apiClient *client.APIClient) oryIdentityClient {
	return oryIdentityClient{apiClient: apiClient}
}

// NewOryAPIClient builds the kratos client from ORY_KRATOS_PUBLIC.
func NewOryAPIClient() *client.APIClient {
	cfg := client.NewConfiguration()
	cfg.Servers = client.ServerConfigurations{
		{URL: os.Getenv("ORY_KRATOS_PUBLIC")},
	}
	cfg.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}
	return client.NewAPIClient(cfg)
}

func (o oryIdentityClient) GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error) {
	sess, _, err := o.apiClient.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		return client.Identity{}, fmt.Errorf("could not get identity from cookie: %w", err)
	}
	if sess.Identity == nil {
		return client.Identity{}, fmt.Errorf("identity not found in session")
	}
	return *sess.Identity, nil
}

// DisplayNameFromIdentity reads the name trait. Both a plain string and the
// {first, last} object of the default kratos schema are understood. Falls back
// to the email trait and finally the identity id.
func DisplayNameFromIdentity(identity client.Identity) string {
	traits, ok := identity.Traits.(map[string]any)
	if !ok {
		return identity.Id
	}
	switch name := traits["name"].(type) {
	case string:
		if name != "" {
			return name
		}
	case map[string]any:
		first, _ := name["first"].(string)
		last, _ := name["last"].(string)
		if full := strings.TrimSpace(first + " " + last); full != "" {
			return full
		}
	}
	if email, ok := traits["email"].(string); ok && email != "" {
		return email
	}
	return identity.Id
}
