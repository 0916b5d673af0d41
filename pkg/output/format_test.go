package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btcbacked/collateral-calc/internal/calculator"
	"github.com/btcbacked/collateral-calc/pkg/i18n"
)

func coveredSnapshot(t *testing.T) calculator.Snapshot {
	t.Helper()
	calc := calculator.New(nil, nil)
	if _, ok := calc.AddPosition(calculator.Position{Principal: "10000", Collateral: "1.0"}); !ok {
		t.Fatal("AddPosition rejected")
	}
	if _, ok := calc.AddRate(calculator.RatePeriod{Rate: "12", Period: "12"}); !ok {
		t.Fatal("AddRate rejected")
	}
	snap, ok := calc.AddPrice("20000")
	if !ok {
		t.Fatal("AddPrice rejected")
	}
	return snap
}

func TestPrettyFormat(t *testing.T) {
	snap := coveredSnapshot(t)

	var buf bytes.Buffer
	PrettyFormat(&buf, snap, i18n.ForTags("en"))
	out := buf.String()

	for _, want := range []string{
		"Initial Debt: 10,000.00 USDT",
		"Total Interest: 1,200.00 USDT",
		"Monthly Interest: 100.00 USDT",
		"Final Debt: 11,200.00 USDT",
		"Effective Rate: 12.00%",
		"Total Collateral: 1 BTC",
		"Required BTC: 0.56",
		"Remaining BTC: 0.44",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q\n%s", want, out)
		}
	}
}

func TestPrettyFormatUncoveredWithholdsResults(t *testing.T) {
	calc := calculator.New(nil, nil)
	calc.AddPosition(calculator.Position{Principal: "10000", Collateral: "1.0"})
	snap, _ := calc.AddRate(calculator.RatePeriod{Rate: "10", Period: "6"})

	var buf bytes.Buffer
	PrettyFormat(&buf, snap, i18n.ForTags("en"))
	out := buf.String()

	if strings.Contains(out, "Final Debt") {
		t.Errorf("pretty output shows results for an uncovered schedule:\n%s", out)
	}
	if !strings.Contains(out, "Please specify interest rates") {
		t.Errorf("pretty output missing the specify-rates hint:\n%s", out)
	}
}

func TestPrettyFormatLocalized(t *testing.T) {
	snap := coveredSnapshot(t)

	var buf bytes.Buffer
	PrettyFormat(&buf, snap, i18n.ForTags("uk"))
	out := buf.String()

	if !strings.Contains(out, "Кінцевий борг") {
		t.Errorf("pretty output not localized:\n%s", out)
	}
}

func TestCsvFormat(t *testing.T) {
	snap := coveredSnapshot(t)

	var buf bytes.Buffer
	CsvFormat(&buf, snap)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d CSV lines, expected header plus one scenario:\n%s", len(lines), buf.String())
	}
	if lines[0] != "price,collateralValue,collateralPercent,requiredCollateral,surplusCollateral" {
		t.Errorf("unexpected CSV header: %q", lines[0])
	}
	if lines[1] != "20000.00,20000.00,200.0,0.56000000,0.44000000" {
		t.Errorf("unexpected CSV row: %q", lines[1])
	}
}
