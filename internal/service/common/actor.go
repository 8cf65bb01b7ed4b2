//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"google.golang.org/grpc/metadata"
)

// Metadata keys carrying the caller identity.
const (
	MetadataHostname = "x-actor-hostname"
	MetadataUsername = "x-actor-username"
)

// Actor identifies the machine and user issuing a request.
type Actor struct {
	// Hostname is the machine name of the caller.
	Hostname string
	// Username is the system user of the caller.
	Username string
}

// DetectActor gathers host and user information of the current process.
func DetectActor() (*Actor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	return &Actor{
		Hostname: hostname,
		Username: currentUser.Username,
	}, nil
}

// OutgoingContext returns ctx with the actor appended to the outgoing gRPC metadata.
func (a *Actor) OutgoingContext(ctx context.Context) context.Context {
	if a == nil {
		return ctx
	}

	return metadata.AppendToOutgoingContext(ctx, MetadataHostname, a.Hostname, MetadataUsername, a.Username)
}

// ActorFromIncoming extracts the actor from incoming gRPC metadata.
// It returns nil when the caller did not identify itself.
func ActorFromIncoming(ctx context.Context) *Actor {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	hostnames, usernames := md.Get(MetadataHostname), md.Get(MetadataUsername)
	if len(hostnames) == 0 && len(usernames) == 0 {
		return nil
	}

	actor := new(Actor)
	if len(hostnames) > 0 {
		actor.Hostname = hostnames[0]
	}

	if len(usernames) > 0 {
		actor.Username = usernames[0]
	}

	return actor
}
