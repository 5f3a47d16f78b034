// ABOUTME: Route guard deciding which named view a session may reach
// ABOUTME: Redirects denied attempts to the actual role's landing route or login

package auth

import "alumniconnect/internal/models"

// LoginRoute is where every unauthenticated private-route attempt lands.
const LoginRoute = "/login"

// publicRoutes are reachable without a session (preview pages included).
var publicRoutes = map[string]bool{
	"/":               true,
	"/login":          true,
	"/register":       true,
	"/create-account": true,
	"/directory":      true,
	"/events":         true,
	"/communication":  true,
	"/career":         true,
	"/legacy":         true,
	"/networking":     true,
}

// IsPublicRoute reports whether the path is reachable without a session.
func IsPublicRoute(path string) bool {
	return publicRoutes[path]
}

// CanAccess reports whether the current session satisfies the required
// role. Exact match only: there is no implicit hierarchy, a super admin
// does not satisfy an admin requirement.
func (c *Controller) CanAccess(required models.Role) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticatedLocked() {
		return false
	}
	return c.user.Role == required
}

// Resolve maps a requested path to the path that should actually be
// mounted for the current session:
//   - unauthenticated sessions reach public routes as-is, everything else
//     redirects to /login
//   - authenticated sessions at "/" land on their role's dashboard
//   - an authenticated session requesting another role's dashboard is sent
//     to its own role's dashboard, never back to login
func (c *Controller) Resolve(path string) string {
	c.mu.Lock()
	authenticated := c.authenticatedLocked()
	var role models.Role
	if authenticated {
		role = c.user.Role
	}
	c.mu.Unlock()

	if !authenticated {
		if IsPublicRoute(path) {
			return path
		}
		return LoginRoute
	}

	if path == "/" || path == LoginRoute {
		return role.DashboardPath()
	}
	if required, ok := dashboardRole(path); ok && required != role {
		return role.DashboardPath()
	}
	return path
}

// dashboardRole reports which role a dashboard path requires.
func dashboardRole(path string) (models.Role, bool) {
	for _, r := range models.Roles {
		if r.DashboardPath() == path {
			return r, true
		}
	}
	return "", false
}
