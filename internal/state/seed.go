package state

// Seed returns a catalog filled with sample data.
func Seed() *Catalog {
	c := NewCatalog()
	c.Chats.SetEntries([]Entry{
		{ID: "chat-1", Title: "Server setup", Subtitle: "The server is configured and ready", Status: "pinned",
			Fields: []Field{{"Messages", "15"}, {"Folder", "-"}}},
		{ID: "chat-2", Title: "Log analysis", Subtitle: "Found potential problems in the logs", Status: "",
			Fields: []Field{{"Messages", "8"}, {"Folder", "Work"}}},
		{ID: "chat-3", Title: "System backup", Subtitle: "Creating a database backup", Status: "",
			Fields: []Field{{"Messages", "23"}, {"Folder", "Systems"}}},
		{ID: "chat-4", Title: "Performance monitoring", Subtitle: "CPU usage is normal", Status: "pinned",
			Fields: []Field{{"Messages", "41"}, {"Folder", "-"}}},
	})
	c.Devices.SetEntries([]Entry{
		{ID: "device-1", Title: "MacBook Pro M3", Subtitle: "macOS 14.5", Status: "online",
			Fields: []Field{{"Type", "macOS"}, {"Address", "192.168.1.100"}, {"Location", "Office"}}},
		{ID: "device-2", Title: "Ubuntu Server", Subtitle: "Ubuntu 22.04 LTS", Status: "online",
			Fields: []Field{{"Type", "Linux"}, {"Address", "192.168.1.101"}, {"Location", "Data center"}}},
		{ID: "device-3", Title: "iPhone 15 Pro", Subtitle: "iOS 17.5", Status: "offline",
			Fields: []Field{{"Type", "iOS"}, {"Address", "192.168.1.102"}, {"Location", "Mobile"}}},
		{ID: "device-4", Title: "Windows Workstation", Subtitle: "Windows 11 Pro", Status: "maintenance",
			Fields: []Field{{"Type", "Windows"}, {"Address", "192.168.1.103"}, {"Location", "Office"}}},
	})
	c.Actions.SetEntries([]Entry{
		{ID: "action-1", Title: "System update", Subtitle: "Ubuntu Server", Status: "running",
			Fields: []Field{{"Progress", "65%"}}},
		{ID: "action-2", Title: "Backup", Subtitle: "MacBook Pro M3", Status: "completed",
			Fields: []Field{{"Progress", "100%"}}},
		{ID: "action-3", Title: "Security scan", Subtitle: "Windows Workstation", Status: "failed",
			Fields: []Field{{"Progress", "30%"}}},
		{ID: "action-4", Title: "Temp file cleanup", Subtitle: "MacBook Pro M3", Status: "queued",
			Fields: []Field{{"Progress", "0%"}}},
	})
	c.Integrations.SetEntries([]Entry{
		{ID: "integration-1", Title: "Gmail", Subtitle: "Mail access and notifications", Status: "connected",
			Fields: []Field{{"Type", "Email"}, {"Scope", "Full access"}, {"Permissions", "Read mail, Send mail"}}},
		{ID: "integration-2", Title: "Telegram", Subtitle: "Notifications and quick commands", Status: "connected",
			Fields: []Field{{"Type", "Messaging"}, {"Scope", "Send messages"}, {"Permissions", "Send messages, Receive commands"}}},
		{ID: "integration-3", Title: "Google Calendar", Subtitle: "Task planning and reminders", Status: "expired",
			Fields: []Field{{"Type", "Calendar"}, {"Scope", "Read and write"}, {"Permissions", "Read calendar, Create events"}}},
		{ID: "integration-4", Title: "Google Drive", Subtitle: "File and backup storage", Status: "disconnected",
			Fields: []Field{{"Type", "Storage"}, {"Scope", "Manage files"}, {"Permissions", "Read files, Create files"}}},
	})
	return c
}
