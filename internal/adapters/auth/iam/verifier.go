package iam

import (
	"context"
	"fmt"

	"medtrack-core/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier usando el cliente IAM.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrIAMNotConfigured
	}
	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("iam verify failed: %w", err)
	}
	return claims, nil
}

var _ auth.AuthVerifier = (*Verifier)(nil)
