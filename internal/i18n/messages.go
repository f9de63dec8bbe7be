package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyTitle          = "title"
	KeySpin           = "spin"
	KeySpinning       = "spinning"
	KeyResult         = "result"
	KeyNoResult       = "result.none"
	KeyAdd            = "option.add"
	KeyAddPlaceholder = "option.add.placeholder"
	KeySave           = "option.save"
	KeyRemove         = "option.remove"
	KeyUp             = "option.up"
	KeyDown           = "option.down"
	KeyReset          = "reset"
	KeyResetConfirm   = "reset.confirm"
	KeyPreset         = "preset"
	KeyReport         = "report"
	KeyHistory        = "history"
	KeyWeightShare    = "option.share"
	KeyEmptyWheel     = "err.empty"
	KeyInvalidWeight  = "err.weight"
	KeyInvalidLabel   = "err.label"
	KeyInvalidIndex   = "err.index"
	KeySpinInProgress = "err.spinning"
	KeyUnknownPreset  = "err.preset"
	KeyNoSpin         = "err.nospin"
	KeyWinner         = "winner"
	KeyReportOption   = "report.option"
	KeyReportWeight   = "report.weight"
	KeyReportShare    = "report.share"
	KeyWeight         = "option.weight"
)

func init() {
	set(PortugueseBR, map[string]string{
		KeyTitle:          "Roleta",
		KeySpin:           "Girar",
		KeySpinning:       "Girando...",
		KeyResult:         "Resultado",
		KeyNoResult:       "Gire a roleta!",
		KeyAdd:            "Adicionar",
		KeyAddPlaceholder: "Nova opção",
		KeySave:           "Salvar",
		KeyRemove:         "Remover",
		KeyUp:             "Subir",
		KeyDown:           "Descer",
		KeyReset:          "Restaurar padrão",
		KeyResetConfirm:   "Redefinir opções?",
		KeyPreset:         "Modelo",
		KeyReport:         "Relatório PDF",
		KeyHistory:        "Últimos resultados",
		KeyWeightShare:    "%.1f%% da roleta",
		KeyEmptyWheel:     "Adicione ao menos uma opção antes de girar.",
		KeyInvalidWeight:  "O peso precisa ser um número maior que zero.",
		KeyInvalidLabel:   "O nome não pode ficar vazio nem passar de 64 caracteres.",
		KeyInvalidIndex:   "Essa opção não existe mais.",
		KeySpinInProgress: "Espere a roleta parar para editar.",
		KeyUnknownPreset:  "Modelo desconhecido.",
		KeyNoSpin:         "Nenhum giro em andamento.",
		KeyWinner:         "Saiu: %s",
		KeyReportOption:   "Opção",
		KeyReportWeight:   "Peso",
		KeyReportShare:    "Fatia",
		KeyWeight:         "peso",
	})
	set(English, map[string]string{
		KeyTitle:          "Wheel",
		KeySpin:           "Spin",
		KeySpinning:       "Spinning...",
		KeyResult:         "Result",
		KeyNoResult:       "Spin the wheel!",
		KeyAdd:            "Add",
		KeyAddPlaceholder: "New option",
		KeySave:           "Save",
		KeyRemove:         "Remove",
		KeyUp:             "Up",
		KeyDown:           "Down",
		KeyReset:          "Restore defaults",
		KeyResetConfirm:   "Reset the options?",
		KeyPreset:         "Preset",
		KeyReport:         "PDF report",
		KeyHistory:        "Recent results",
		KeyWeightShare:    "%.1f%% of the wheel",
		KeyEmptyWheel:     "Add at least one option before spinning.",
		KeyInvalidWeight:  "Weight must be a number greater than zero.",
		KeyInvalidLabel:   "Label must not be empty or longer than 64 characters.",
		KeyInvalidIndex:   "That option no longer exists.",
		KeySpinInProgress: "Wait for the wheel to stop before editing.",
		KeyUnknownPreset:  "Unknown preset.",
		KeyNoSpin:         "No spin in progress.",
		KeyWinner:         "Winner: %s",
		KeyReportOption:   "Option",
		KeyReportWeight:   "Weight",
		KeyReportShare:    "Share",
		KeyWeight:         "weight",
	})
}

func set(tag language.Tag, msgs map[string]string) {
	for key, msg := range msgs {
		if err := message.SetString(tag, key, msg); err != nil {
			panic(err)
		}
	}
}
