package route

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAction = errors.New("unknown screen action")

type Path string

const (
	Splash         Path = "/splash"
	PreLogin       Path = "/pre-login"
	Login          Path = "/login"
	Registration   Path = "/registrate"
	Home           Path = "/home"
	RecoverAccount Path = "/olvidaste-tu-contrasena"
	NotFound       Path = "/404"
)

type Screen string

const (
	ScreenSplash         Screen = "splash"
	ScreenPreLogin       Screen = "pre-login"
	ScreenLogin          Screen = "login"
	ScreenRegistration   Screen = "registration"
	ScreenHome           Screen = "home"
	ScreenRecoverAccount Screen = "recover-account"
	ScreenNotFound       Screen = "not-found"
)

var screens = map[Path]Screen{
	Splash:         ScreenSplash,
	PreLogin:       ScreenPreLogin,
	Login:          ScreenLogin,
	Registration:   ScreenRegistration,
	Home:           ScreenHome,
	RecoverAccount: ScreenRecoverAccount,
	NotFound:       ScreenNotFound,
}

var aliases = map[string]Path{
	"":        Splash,
	"/":       Splash,
	"/signup": Registration,
}

// Resolve maps a requested path to a known route. Unknown paths land on the
// not-found screen.
func Resolve(path string) Path {
	p := strings.TrimSpace(path)
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}

	if target, ok := aliases[p]; ok {
		return target
	}
	if _, ok := screens[Path(p)]; ok {
		return Path(p)
	}
	return NotFound
}

func (p Path) Screen() Screen {
	return screens[p]
}

func (p Path) String() string {
	return string(p)
}

type Action string

const (
	ActionContinue Action = "continue"
	ActionNext     Action = "next"
	ActionSignup   Action = "signup"
	ActionRecover  Action = "recover"
	ActionGoogle   Action = "google"
	ActionLogin    Action = "login"
	ActionHome     Action = "home"
	ActionBack     Action = "back"
)

// Transition is the outcome of a screen action: either a destination or a
// step back in the navigation history.
type Transition struct {
	To   Path
	Back bool
}

var transitions = map[Screen]map[Action]Transition{
	ScreenSplash: {
		ActionContinue: {To: PreLogin},
	},
	ScreenPreLogin: {
		ActionNext:   {To: Login},
		ActionSignup: {To: Registration},
	},
	ScreenLogin: {
		ActionRecover: {To: RecoverAccount},
		ActionGoogle:  {To: Home},
		ActionSignup:  {To: Registration},
	},
	ScreenRegistration: {
		ActionLogin: {To: Login},
	},
	ScreenNotFound: {
		ActionHome: {To: Home},
		ActionBack: {Back: true},
	},
}

func Next(screen Screen, action Action) (Transition, error) {
	if t, ok := transitions[screen][action]; ok {
		return t, nil
	}
	return Transition{}, fmt.Errorf("%w: %s on %s", ErrUnknownAction, action, screen)
}

func (s Screen) Valid() bool {
	for _, known := range screens {
		if known == s {
			return true
		}
	}
	return false
}

func (a Action) Valid() bool {
	for _, byAction := range transitions {
		if _, ok := byAction[a]; ok {
			return true
		}
	}
	return false
}
