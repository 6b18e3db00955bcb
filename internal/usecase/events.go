package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"titansync/internal/domain/entities"
)

// IsTGL reports whether the estimate's free-text name contains the
// configured TGL marker. The match is an exact, case-sensitive substring
// test: no whitespace or case normalization. An empty marker is rejected
// when settings are written, not here.
func IsTGL(e entities.Estimate, marker string) bool {
	return strings.Contains(e.Name, marker)
}

// IsBigSale reports whether amount strictly exceeds the configured
// threshold. The boundary is exclusive: amount == threshold is false.
func IsBigSale(amount, threshold decimal.Decimal) bool {
	return amount.GreaterThan(threshold)
}
