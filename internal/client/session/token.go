package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry извлекает exp claim из access token без верификации подписи.
// Клиент не владеет ключом подписи сервера; claim нужен только для
// отображения срока в status. Возвращает 0, если claim недоступен.
func tokenExpiry(accessToken string) int64 {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return 0
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}

	return exp.Unix()
}
