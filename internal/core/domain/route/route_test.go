package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input    string
		expected Path
	}{
		{input: "", expected: Splash},
		{input: "/", expected: Splash},
		{input: "/splash", expected: Splash},
		{input: "login", expected: Login},
		{input: "/login/", expected: Login},
		{input: "/pre-login", expected: PreLogin},
		{input: "/signup", expected: Registration},
		{input: "/registrate", expected: Registration},
		{input: "/home", expected: Home},
		{input: "/olvidaste-tu-contrasena", expected: RecoverAccount},
		{input: "/404", expected: NotFound},
		{input: "/does-not-exist", expected: NotFound},
		{input: "/login/extra", expected: NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.input))
		})
	}
}

func TestPath_Screen(t *testing.T) {
	assert.Equal(t, ScreenRegistration, Registration.Screen())
	assert.Equal(t, ScreenNotFound, NotFound.Screen())
	assert.Equal(t, Screen(""), Path("/unknown").Screen())
}

func TestNext(t *testing.T) {
	tests := []struct {
		screen   Screen
		action   Action
		expected Transition
	}{
		{screen: ScreenSplash, action: ActionContinue, expected: Transition{To: PreLogin}},
		{screen: ScreenPreLogin, action: ActionNext, expected: Transition{To: Login}},
		{screen: ScreenPreLogin, action: ActionSignup, expected: Transition{To: Registration}},
		{screen: ScreenLogin, action: ActionRecover, expected: Transition{To: RecoverAccount}},
		{screen: ScreenLogin, action: ActionGoogle, expected: Transition{To: Home}},
		{screen: ScreenLogin, action: ActionSignup, expected: Transition{To: Registration}},
		{screen: ScreenRegistration, action: ActionLogin, expected: Transition{To: Login}},
		{screen: ScreenNotFound, action: ActionHome, expected: Transition{To: Home}},
		{screen: ScreenNotFound, action: ActionBack, expected: Transition{Back: true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.screen)+"/"+string(tt.action), func(t *testing.T) {
			got, err := Next(tt.screen, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNext_UnknownAction(t *testing.T) {
	_, err := Next(ScreenHome, ActionBack)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = Next(ScreenSplash, ActionGoogle)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestScreen_Valid(t *testing.T) {
	assert.True(t, ScreenRegistration.Valid())
	assert.True(t, ScreenNotFound.Valid())
	assert.False(t, Screen("settings").Valid())
	assert.False(t, Screen("").Valid())
}

func TestAction_Valid(t *testing.T) {
	assert.True(t, ActionContinue.Valid())
	assert.True(t, ActionBack.Valid())
	assert.False(t, Action("submit").Valid())
}
