package consts

const (
	ApplicationName    = "Agence Immobilière API"
	ApplicationVersion = "1.2.0"
)
