// Package state описывает состояние сессии CLI-клиента как явную
// таблицу переходов.
//
// Вместо "размазанных" записей в хранилище состояние описано четырьмя
// статусами и четырьмя событиями; персистентность — это эффект,
// который возвращается из перехода, а не побочное действие внутри него.
// Выполняет эффект вызывающий (cli-слой), у самой таблицы ввода-вывода нет.
package state

// Status — статус сессии клиента.
type Status string

const (
	// StatusAnonymous — пользователь не вошёл.
	StatusAnonymous Status = "anonymous"
	// StatusPending — запрос register/login отправлен, ответа ещё нет.
	StatusPending Status = "pending"
	// StatusAuthenticated — вход выполнен, токен получен.
	StatusAuthenticated Status = "authenticated"
	// StatusErrored — последний запрос завершился ошибкой.
	StatusErrored Status = "errored"
)

// EventKind — тип события, двигающего машину состояний.
type EventKind string

const (
	// EventSubmit — пользователь отправил форму (register или login).
	EventSubmit EventKind = "submit"
	// EventSuccess — сервер ответил успехом (пришли user и token).
	EventSuccess EventKind = "success"
	// EventFailure — сервер ответил ошибкой.
	EventFailure EventKind = "failure"
	// EventLogout — пользователь вышел.
	EventLogout EventKind = "logout"
)

// Effect — побочный эффект перехода, который должен выполнить вызывающий.
type Effect int

const (
	// EffectNone — ничего делать не нужно.
	EffectNone Effect = iota
	// EffectPersist — сохранить сессию (токен + пользователь) на диск.
	EffectPersist
	// EffectClear — стереть сохранённую сессию.
	EffectClear
)

// Session — пользовательская часть состояния.
type Session struct {
	UserID string
	Name   string
	Email  string
	Token  string
}

// State — полное состояние сессии клиента.
type State struct {
	Status  Status
	Session Session
	// Err — текст последней ошибки (только в StatusErrored).
	Err string
}

// Event — событие с данными.
type Event struct {
	Kind    EventKind
	Session Session // для EventSuccess
	Err     string  // для EventFailure
}

// Anonymous возвращает начальное состояние.
func Anonymous() State {
	return State{Status: StatusAnonymous}
}

// Authenticated восстанавливает состояние из сохранённой сессии
// (например, после перезапуска клиента).
func Authenticated(s Session) State {
	return State{Status: StatusAuthenticated, Session: s}
}

// Reduce — чистая функция перехода.
//
// Таблица:
//
//	anonymous     + submit  -> pending
//	errored       + submit  -> pending            (повторная попытка)
//	pending       + success -> authenticated      [persist]
//	pending       + failure -> errored
//	authenticated + logout  -> anonymous          [clear]
//	errored       + logout  -> anonymous          [clear]
//
// Любая другая пара (состояние, событие) — недопустимый переход:
// состояние не меняется, эффект EffectNone.
func Reduce(s State, e Event) (State, Effect) {
	switch s.Status {
	case StatusAnonymous:
		if e.Kind == EventSubmit {
			return State{Status: StatusPending}, EffectNone
		}
	case StatusPending:
		switch e.Kind {
		case EventSuccess:
			return State{Status: StatusAuthenticated, Session: e.Session}, EffectPersist
		case EventFailure:
			return State{Status: StatusErrored, Err: e.Err}, EffectNone
		}
	case StatusAuthenticated:
		if e.Kind == EventLogout {
			return Anonymous(), EffectClear
		}
	case StatusErrored:
		switch e.Kind {
		case EventSubmit:
			return State{Status: StatusPending}, EffectNone
		case EventLogout:
			return Anonymous(), EffectClear
		}
	}
	return s, EffectNone
}
