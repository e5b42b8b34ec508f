package shell

import "fmt"

const bashScript = `prettyline_prompt() {
    PS1="$(%[1]s left --shell bash --exit-status $?)"
}
PROMPT_COMMAND=prettyline_prompt
`

const zshScript = `prettyline_precmd() {
    local exit_status=$?
    PROMPT="$(%[1]s left --shell zsh --exit-status $exit_status)"
    RPROMPT="$(%[1]s right --shell zsh)"
}
autoload -Uz add-zsh-hook
add-zsh-hook precmd prettyline_precmd
`

const fishScript = `function fish_prompt
    command %[1]s left --shell fish --exit-status $status
end
function fish_right_prompt
    command %[1]s right --shell fish
end
`

// InitScript returns the code a user evaluates from their shell rc file to
// install the prompt. bin is the command used to call prettyline.
func (s Shell) InitScript(bin string) string {
	switch s {
	case Bash:
		return fmt.Sprintf(bashScript, bin) + "export VIRTUAL_ENV_DISABLE_PROMPT=1\n"
	case Zsh:
		return fmt.Sprintf(zshScript, bin) + "export VIRTUAL_ENV_DISABLE_PROMPT=1\n"
	case Fish:
		return fmt.Sprintf(fishScript, bin) + "set --export VIRTUAL_ENV_DISABLE_PROMPT 1\n"
	default:
		return ""
	}
}
