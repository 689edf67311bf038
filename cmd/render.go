package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"boekhouder/internal/finance"
	"boekhouder/pkg/models"
)

const lineFormat = "%-32s %16s\n"

func writeLine(w io.Writer, label string, amount float64) {
	fmt.Fprintf(w, lineFormat, label, finance.FormatEuro(amount))
}

func writeRule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", 49))
}

func writeSummary(w io.Writer, s models.FinancialSummary, year int) {
	if year > 0 {
		fmt.Fprintf(w, "Financieel overzicht %d\n", year)
	} else {
		fmt.Fprintln(w, "Financieel overzicht (alle jaren)")
	}
	writeRule(w)
	writeLine(w, "Omzet", s.Revenue)
	writeLine(w, "Kosten", s.Expenses)
	writeLine(w, "Winst", s.Profit)
	writeLine(w, "Investeringen", s.Investments)
	writeLine(w, "KIA-aftrek", s.KIADeduction)
	writeRule(w)
	writeLine(w, "BTW af te dragen", s.VATPayable)
	writeLine(w, "Voorbelasting", s.VATDeductible)
	writeLine(w, "BTW saldo", s.VATTotal)
	if s.ManualCorrection != 0 {
		writeRule(w)
		writeLine(w, "Handmatige correctie", s.ManualCorrection)
	}
}

func writeVatReport(w io.Writer, r models.VatReport, rates finance.VATRates) {
	fmt.Fprintf(w, "BTW-aangifte %d Q%d\n", r.Year, r.Quarter)
	writeRule(w)
	writeLine(w, fmt.Sprintf("1a Omzet hoog tarief (%d%%)", rates.High), r.TurnoverHigh)
	writeLine(w, "1a BTW hoog tarief", r.VATHigh)
	writeLine(w, fmt.Sprintf("1b Omzet laag tarief (%d%%)", rates.Low), r.TurnoverLow)
	writeLine(w, "1b BTW laag tarief", r.VATLow)
	writeLine(w, "5b Voorbelasting", r.VATDeductible)
	writeRule(w)
	if r.TotalPayable < 0 {
		writeLine(w, "Terug te ontvangen", -r.TotalPayable)
		return
	}
	writeLine(w, "Te betalen", r.TotalPayable)
}

func writeValuation(w io.Writer, v models.Valuation) {
	writeLine(w, "Bedrijfswaarde", v.CompanyValue)
	if len(v.Shares) == 0 {
		return
	}
	writeRule(w)
	for _, share := range v.Shares {
		label := fmt.Sprintf("%s (%s%%)", share.Shareholder.Name, formatPercentage(share.Shareholder.DefaultPercentage))
		writeLine(w, label, share.Amount)
	}
}

func writeAssets(w io.Writer, assets []finance.AssetValue, total float64, at time.Time) {
	fmt.Fprintf(w, "Boekwaarde per %s\n", at.Format("02-01-2006"))
	writeRule(w)
	for _, a := range assets {
		label := fmt.Sprintf("%s %s", a.Investment.Date, a.Investment.Description)
		writeLine(w, label, a.BookValue)
	}
	writeRule(w)
	writeLine(w, "Totaal", total)
}

func writeInvoices(w io.Writer, invoices []models.Invoice) {
	fmt.Fprintf(w, "%-12s %-10s %-9s %-20s %16s\n", "Nummer", "Datum", "Status", "Relatie", "Totaal incl.")
	var total float64
	for _, inv := range invoices {
		t := finance.InvoiceTotals(inv)
		total += t.Gross
		fmt.Fprintf(w, "%-12s %-10s %-9s %-20s %16s\n",
			inv.Number, inv.Date, inv.Status, truncate(inv.Relation, 20), finance.FormatEuro(t.Gross))
	}
	writeRule(w)
	fmt.Fprintf(w, "%d facturen, totaal %s\n", len(invoices), finance.FormatEuro(total))
}

func writeSplit(w io.Writer, a finance.Amounts, rate float64) {
	writeLine(w, "Excl. BTW", a.Net)
	writeLine(w, fmt.Sprintf("BTW (%s%%)", formatPercentage(rate)), a.VAT)
	writeLine(w, "Incl. BTW", a.Gross)
}

func formatPercentage(v float64) string {
	return strings.Replace(fmt.Sprintf("%g", v), ".", ",", 1)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
