// Package shellintegration holds the four static shell-integration
// snippets (spec §6) and the $SHELL-basename selection logic used by
// `configure-shell` and `init` (spec §4.8/C9). The snippets' own
// contents are out of scope per spec.md §1 ("the embedded shell-
// integration snippets themselves ... are out of scope"); what this
// package implements is the contract around them: selection, the `dr`
// wrapper shape, and the command_not_found re-entrancy guard named in
// spec §6. Its tests cover selection and the presence of the guard, not
// the `dr` wrapper.
package shellintegration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleyan/dela/internal/delaerr"
)

// Shell identifies one of the four shells dela ships integration for.
type Shell string

const (
	Zsh  Shell = "zsh"
	Bash Shell = "bash"
	Fish Shell = "fish"
	Pwsh Shell = "pwsh"
)

// FromEnv derives the active shell from $SHELL's basename (spec §6).
func FromEnv() (Shell, error) {
	shellPath := os.Getenv("SHELL")
	base := strings.ToLower(filepath.Base(shellPath))
	base = strings.TrimSuffix(base, ".exe")
	if base == "powershell" {
		base = "pwsh"
	}
	switch Shell(base) {
	case Zsh, Bash, Fish, Pwsh:
		return Shell(base), nil
	default:
		return "", delaerr.New(delaerr.KindUnsupportedShell, "unsupported or undetected shell %q", shellPath)
	}
}

// Snippet returns the static integration snippet for shell.
func Snippet(shell Shell) (string, error) {
	switch shell {
	case Zsh:
		return zshSnippet, nil
	case Bash:
		return bashSnippet, nil
	case Fish:
		return fishSnippet, nil
	case Pwsh:
		return pwshSnippet, nil
	default:
		return "", delaerr.New(delaerr.KindUnsupportedShell, "unsupported shell %q", shell)
	}
}

// RCFile returns the rc file `init` should append a source line to for
// shell, relative to home.
func RCFile(shell Shell, home string) (string, error) {
	switch shell {
	case Zsh:
		return filepath.Join(home, ".zshrc"), nil
	case Bash:
		return filepath.Join(home, ".bashrc"), nil
	case Fish:
		return filepath.Join(home, ".config", "fish", "config.fish"), nil
	case Pwsh:
		return filepath.Join(home, ".config", "powershell", "Microsoft.PowerShell_profile.ps1"), nil
	default:
		return "", delaerr.New(delaerr.KindUnsupportedShell, "unsupported shell %q", shell)
	}
}

// SourceLine is the line `init` appends to the user's rc file so the
// snippet loads in every new shell. binPath is the resolved absolute
// path to the dela binary (spec §4.8's `init`).
func SourceLine(shell Shell, binPath string) string {
	switch shell {
	case Pwsh:
		return fmt.Sprintf(`Invoke-Expression (& '%s' configure-shell | Out-String)`, binPath)
	default:
		return fmt.Sprintf(`eval "$(%s configure-shell)"`, binPath)
	}
}

// zshSnippet defines `dr` and command_not_found_handler, guarding
// re-entrancy with DELA_TASK_RUNNING per spec §6.
const zshSnippet = `
dr() {
  local name="$1"
  shift
  local cmd
  cmd="$(dela get-command -- "$name" "$@")" || return $?
  eval "$cmd"
}

command_not_found_handler() {
  if [ -n "$DELA_TASK_RUNNING" ]; then
    echo "zsh: command not found: $1" >&2
    return 127
  fi
  export DELA_TASK_RUNNING=1
  if ! dela allow-command "$1"; then
    unset DELA_TASK_RUNNING
    echo "zsh: command not found: $1" >&2
    return 127
  fi
  local cmd
  if ! cmd="$(dela get-command "$@")"; then
    unset DELA_TASK_RUNNING
    echo "zsh: command not found: $1" >&2
    return 127
  fi
  eval "$cmd"
  local status=$?
  unset DELA_TASK_RUNNING
  return $status
}
`

// bashSnippet mirrors zshSnippet for bash's command_not_found_handle hook.
const bashSnippet = `
dr() {
  local name="$1"
  shift
  local cmd
  cmd="$(dela get-command -- "$name" "$@")" || return $?
  eval "$cmd"
}

command_not_found_handle() {
  if [ -n "$DELA_TASK_RUNNING" ]; then
    echo "bash: command not found: $1" >&2
    return 127
  fi
  export DELA_TASK_RUNNING=1
  if ! dela allow-command "$1"; then
    unset DELA_TASK_RUNNING
    echo "bash: command not found: $1" >&2
    return 127
  fi
  local cmd
  if ! cmd="$(dela get-command "$@")"; then
    unset DELA_TASK_RUNNING
    echo "bash: command not found: $1" >&2
    return 127
  fi
  eval "$cmd"
  local status=$?
  unset DELA_TASK_RUNNING
  return $status
}
`

// fishSnippet mirrors the others for fish's event-based hook.
const fishSnippet = `
function dr
  set -l name $argv[1]
  set -e argv[1]
  set -l cmd (dela get-command -- $name $argv)
  or return $status
  eval $cmd
end

function fish_command_not_found --on-event fish_command_not_found
  if set -q DELA_TASK_RUNNING
    echo "fish: Unknown command: $argv[1]" >&2
    return 127
  end
  set -gx DELA_TASK_RUNNING 1
  if not dela allow-command $argv[1]
    set -e DELA_TASK_RUNNING
    echo "fish: Unknown command: $argv[1]" >&2
    return 127
  end
  set -l cmd (dela get-command $argv)
  if test $status -ne 0
    set -e DELA_TASK_RUNNING
    echo "fish: Unknown command: $argv[1]" >&2
    return 127
  end
  eval $cmd
  set -l code $status
  set -e DELA_TASK_RUNNING
  return $code
end
`

// pwshSnippet mirrors the others using a CommandNotFoundException trap.
const pwshSnippet = `
function dr {
  param([string]$Name, [Parameter(ValueFromRemainingArguments)]$Args)
  $cmd = & dela get-command -- $Name @Args
  if ($LASTEXITCODE -ne 0) { return $LASTEXITCODE }
  Invoke-Expression $cmd
}

$ExecutionContext.InvokeCommand.CommandNotFoundAction = {
  param($CommandName, $CommandLookupEventArgs)
  if ($env:DELA_TASK_RUNNING) { return }
  $env:DELA_TASK_RUNNING = "1"
  $CommandLookupEventArgs.CommandScriptBlock = {
    & dela allow-command $CommandName
    if ($LASTEXITCODE -ne 0) {
      Write-Error "command not found: $CommandName"
      $env:DELA_TASK_RUNNING = $null
      return
    }
    $cmd = & dela get-command $CommandName @args
    if ($LASTEXITCODE -ne 0) {
      Write-Error "command not found: $CommandName"
      $env:DELA_TASK_RUNNING = $null
      return
    }
    Invoke-Expression $cmd
    $env:DELA_TASK_RUNNING = $null
  }.GetNewClosure()
}
`
