package missioning

import "errors"

var (
	ErrMissionNotFound   = errors.New("missão não encontrada")
	ErrMissionForbidden  = errors.New("missão pertence a outro usuário")
	ErrMissingTitle      = errors.New("título da missão é obrigatório")
	ErrMissingStartTime  = errors.New("data de início da missão é obrigatória")
	ErrInvalidType       = errors.New("tipo de missão inválido")
	ErrInvalidThreat     = errors.New("nível de ameaça inválido")
	ErrEndBeforeStart    = errors.New("data de término anterior à data de início")
	ErrInvalidDateFilter = errors.New("intervalo de datas do filtro é inválido")
	ErrMissingNote       = errors.New("anotação do registro é obrigatória")

	ErrEventNotFound  = errors.New("evento não encontrado")
	ErrEventForbidden = errors.New("evento pertence a outro usuário")

	ErrNotificationNotFound  = errors.New("notificação não encontrada")
	ErrNotificationForbidden = errors.New("notificação pertence a outro usuário")
)
