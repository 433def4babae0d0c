package view

import (
	"fmt"

	"expensetracker/internal/presenter"
)

// The helpers below turn an intent result into printable text, shared by the
// menu and the subcommands.

func failureOutput(f *presenter.Failure) string {
	return RenderError(string(f.Kind), f.Message)
}

func adviceOutput(r presenter.Result[presenter.AdviceView]) string {
	if !r.OK {
		return failureOutput(r.Failure)
	}
	return RenderAdvice(r.Payload)
}

func totalsOutput(r presenter.Result[presenter.TotalsView], currency string) string {
	if !r.OK {
		return failureOutput(r.Failure)
	}
	return RenderTotals(r.Payload, currency)
}

func barOutput(r presenter.Result[presenter.TotalsView], currency string) string {
	if !r.OK {
		return failureOutput(r.Failure)
	}
	return RenderBarChart(r.Payload, currency)
}

func pieOutput(r presenter.Result[presenter.TotalsView]) string {
	if !r.OK {
		return failureOutput(r.Failure)
	}
	return RenderPieChart(r.Payload)
}

func exportOutput(r presenter.Result[presenter.ExportView]) string {
	if !r.OK {
		return failureOutput(r.Failure)
	}
	return RenderNotice(fmt.Sprintf("Report exported as '%s' (%s rows)", r.Payload.Path, FormatCount(int64(r.Payload.Rows))))
}
