package normalize

import (
	"pug-tracker/internal/domain"
)

// Server normalizes a raw game server record.
func Server(rec map[string]any) domain.GameServer {
	return domain.GameServer{
		ID:           intField(rec, "id"),
		DisplayName:  strField(rec, "display_name", "name"),
		IPString:     strField(rec, "ip_string", "ip"),
		Port:         intField(rec, "port"),
		PublicServer: boolField(rec, "public_server"),
		InUse:        boolField(rec, "in_use"),
		FlagCode:     strField(rec, "flag"),
	}
}
