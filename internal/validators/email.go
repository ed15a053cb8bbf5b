package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// LookupTimeout limita a consulta DNS feita no cadastro.
const LookupTimeout = 3 * time.Second

// IsEmailDomainValid aceita o domínio com registro MX ou, na falta dele,
// com algum endereço IP.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), LookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
