package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/pkg/config"
	"github.com/jhoicas/Facturas-api/pkg/jwt"
)

// Locals keys para los datos del usuario autenticado en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalName   = "name"
)

// SessionGate exige sesión activa en las rutas donde se monta. La sesión viaja
// en la cookie HttpOnly configurada o, alternativamente, como Bearer token.
// Un visitante anónimo o con token inválido no recibe 401: se lo redirige a la
// página de login, como en cualquier dashboard con navegación.
func SessionGate(jwtSecret string, session config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(session.CookieName)
		if tokenString == "" {
			tokenString = bearerToken(c)
		}
		if tokenString == "" {
			return c.Redirect(session.LoginPath, fiber.StatusFound)
		}
		userID, email, name, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Redirect(session.LoginPath, fiber.StatusFound)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalName, name)
		return c.Next()
	}
}

// bearerToken extrae el token del header Authorization, o "" si no hay.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve el UserID del contexto (después del gate de sesión).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserEmail devuelve el email del contexto (después del gate de sesión).
func GetUserEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserName devuelve el nombre del contexto (después del gate de sesión).
func GetUserName(c *fiber.Ctx) string {
	v := c.Locals(LocalName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
