package orchestrator

import "fmt"

// Outbound UI method reporting that a generator started or stopped being handled.
const MethodUpdateBeingHandledGenerator = "updateBeingHandledGenerator"

func installingMessage(name string) string {
	return fmt.Sprintf("Installing the latest version of %s ...", name)
}

func installedMessage(name string) string {
	return fmt.Sprintf("%s successfully installed.", name)
}

func uninstallingMessage(name string) string {
	return fmt.Sprintf("Uninstalling %s ...", name)
}

func uninstalledMessage(name string) string {
	return fmt.Sprintf("%s successfully uninstalled.", name)
}

func failedMessage(prefix string, err error) string {
	return fmt.Sprintf("%s: %s", prefix, err)
}
