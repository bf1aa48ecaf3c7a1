package entity

// User representa un usuario del dashboard.
// PasswordHash es un hash bcrypt; la contraseña en claro nunca se persiste ni
// se compara por igualdad de texto después del chequeo inicial de credenciales.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}
