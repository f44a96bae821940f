package detect

import (
	"testing"

	"solana-buy-alerts/internal/domain"
)

func TestPolicyPasses(t *testing.T) {
	policy := Policy{MinUSDC: 10, MinSOL: 0.00001}

	cases := []struct {
		name    string
		payment *domain.PaymentInfo
		want    bool
	}{
		{"nil payment", nil, false},
		{"usdc at threshold", &domain.PaymentInfo{Kind: domain.PaymentStablecoin, Amount: 10}, true},
		{"usdc above", &domain.PaymentInfo{Kind: domain.PaymentStablecoin, Amount: 15}, true},
		{"usdc below", &domain.PaymentInfo{Kind: domain.PaymentStablecoin, Amount: 5}, false},
		{"sol at threshold", &domain.PaymentInfo{Kind: domain.PaymentNative, Amount: 0.00001}, true},
		{"sol below", &domain.PaymentInfo{Kind: domain.PaymentNative, Amount: 0.000001}, false},
		{"unknown kind", &domain.PaymentInfo{Kind: "points", Amount: 1000}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.Passes(tc.payment); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPolicyConfigurableThresholds(t *testing.T) {
	// The native minimum drifted between 0.00001 and 0.1 across deployments;
	// it is a configuration value, not a constant.
	strict := Policy{MinUSDC: 10, MinSOL: 0.1}
	pay := &domain.PaymentInfo{Kind: domain.PaymentNative, Amount: 0.05}
	if strict.Passes(pay) {
		t.Error("0.05 SOL must fail a 0.1 SOL minimum")
	}
	lenient := Policy{MinUSDC: 10, MinSOL: 0.00001}
	if !lenient.Passes(pay) {
		t.Error("0.05 SOL must pass a 0.00001 SOL minimum")
	}
}
