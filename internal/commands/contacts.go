package commands

import (
	"assistantbot/internal/directory"
)

// AddContact stores a new contact: add <name> <phone>.
func AddContact(args []string, dir *directory.Directory) (string, error) {
	if err := dir.Add(args[0], args[1]); err != nil {
		return "", err
	}
	return "Contact added.", nil
}

// ChangeContact replaces the phone of an existing contact: change <name> <phone>.
func ChangeContact(args []string, dir *directory.Directory) (string, error) {
	if err := dir.Change(args[0], args[1]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

// ShowPhone prints the phone of a contact: phone <name>.
func ShowPhone(args []string, dir *directory.Directory) (string, error) {
	return dir.Lookup(args[0])
}

// AllContacts returns a handler printing the whole directory as JSON with the
// given indentation.
func AllContacts(indent int) Handler {
	return func(_ []string, dir *directory.Directory) (string, error) {
		return dir.Snapshot().JSON(indent)
	}
}
