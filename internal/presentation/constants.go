package presentation

const (
	AuthKey      = "Authorization"
	TypeKey      = "Content-Type"
	BearerPrefix = "Bearer "
	PrincipalKey = "principal"
	ObjectParam  = "object"
	OrderParam   = "order"
	FileField    = "file"
	AdminRole    = "admin"
)
