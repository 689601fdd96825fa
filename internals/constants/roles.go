package constants

import "fmt"

// Papéis do GGEM. "encarregado" é único no sistema e definido apenas no
// cadastro inicial; "admin" (secretário) é limitado a 3 ativos.
const (
	RoleInstrutor   = "instrutor"
	RoleEncarregado = "encarregado"
	RoleAdmin       = "admin"
)

// Limite de secretários (admins) ativos simultaneamente.
const MaxAdminsAtivos = 3

// Templates de mensagem de erro por papel
const (
	ErrSomenteAdmins      = "❌ Apenas o encarregado ou um secretário pode acessar %s."
	ErrSomenteEncarregado = "❌ Apenas o encarregado pode acessar %s."
	ErrSomenteInstrutores = "❌ Apenas instrutores cadastrados podem acessar %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrSomenteAdmins, feature)
}

func RoleErrorEncarregado(feature string) string {
	return fmt.Sprintf(ErrSomenteEncarregado, feature)
}

func RoleErrorInstrutor(feature string) string {
	return fmt.Sprintf(ErrSomenteInstrutores, feature)
}

// ==========================
// ✅ Grupos de papéis
// ==========================
var (
	AllRoles = []string{
		RoleInstrutor,
		RoleEncarregado,
		RoleAdmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleEncarregado,
	}

	EncarregadoOnly = []string{
		RoleEncarregado,
	}
)
