package report

import "golang.org/x/text/language"

type labels struct {
	title           string
	direct          string
	labor           string
	machineOperator string
	material        string
	machine         string
	overhead        string
	profit          string
	subtotal        string
	vat             string // takes the VAT percentage
	total           string
}

var englishLabels = labels{
	title:           "Estimate result",
	direct:          "Direct costs:",
	labor:           "Labor:",
	machineOperator: "Machine operators:",
	material:        "Materials:",
	machine:         "Machines:",
	overhead:        "Overhead:",
	profit:          "Profit:",
	subtotal:        "Subtotal excl. VAT:",
	vat:             "VAT %g%%:",
	total:           "TOTAL:",
}

var russianLabels = labels{
	title:           "Результаты расчёта сметы",
	direct:          "Прямые затраты:",
	labor:           "ОЗП:",
	machineOperator: "ЗПМ:",
	material:        "Материалы:",
	machine:         "Машины:",
	overhead:        "Накладные расходы:",
	profit:          "Сметная прибыль:",
	subtotal:        "Итого без НДС:",
	vat:             "НДС %g%%:",
	total:           "ИТОГО:",
}

var labelMatcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

func labelsFor(tag language.Tag) labels {
	_, idx, _ := labelMatcher.Match(tag)
	if idx == 1 {
		return russianLabels
	}
	return englishLabels
}
