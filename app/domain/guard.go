package domain

// Route targets used by guard redirects.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
	LandingPath      = "/"
)

// DecisionKind enumerates the terminal and non-terminal guard outcomes.
type DecisionKind int

const (
	// DecisionPending means session state is still being restored; render a
	// neutral placeholder, never a redirect.
	DecisionPending DecisionKind = iota
	// DecisionAuthorized means the requested view may render.
	DecisionAuthorized
	// DecisionRedirect means navigation must move to Decision.Location.
	DecisionRedirect
)

// Decision is the outcome of a guard evaluation. Guards are pure: they only
// decide; the caller performs the actual navigation.
type Decision struct {
	Kind DecisionKind
	// Location is the redirect target when Kind is DecisionRedirect.
	Location string
	// ReturnTo carries the originally requested location for the post-login
	// bounce-back. Only set for redirects to the login view.
	ReturnTo string
}

// GuardState is the slice of session-store state a guard reads.
type GuardState struct {
	// Restoring mirrors the store's loading flag: true only while the initial
	// restore or an in-flight login is pending.
	Restoring bool
	// Identity is nil when unauthenticated.
	Identity *Identity
}

// Authenticated reports whether an identity is present. This is derived,
// never stored.
func (s GuardState) Authenticated() bool {
	return s.Identity != nil
}

// DecideAuth evaluates the authentication guard for a navigation attempt to
// requested. Pending while restoring; unauthenticated requests redirect to the
// login view preserving the requested location.
func DecideAuth(state GuardState, requested string) Decision {
	if state.Restoring {
		return Decision{Kind: DecisionPending}
	}
	if !state.Authenticated() {
		return Decision{Kind: DecisionRedirect, Location: LoginPath, ReturnTo: requested}
	}
	return Decision{Kind: DecisionAuthorized}
}

// DecideRole evaluates the role guard. The authentication check always
// precedes the role check: a request with no session never reaches the
// role-mismatch branch.
func DecideRole(state GuardState, requested string, allowed ...Role) Decision {
	if d := DecideAuth(state, requested); d.Kind != DecisionAuthorized {
		return d
	}
	if !state.Identity.HasRole(allowed...) {
		return Decision{Kind: DecisionRedirect, Location: UnauthorizedPath}
	}
	return Decision{Kind: DecisionAuthorized}
}
