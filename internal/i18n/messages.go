// ABOUTME: Spanish and English UI strings keyed by message id
// ABOUTME: Keys mirror the page's data-i18n attributes

package i18n

var translations = map[Lang]map[string]string{
	Spanish: {
		"title":             "EchoStatus",
		"subtitle":          "Consulta información de servidores de Minecraft",
		"inputPlaceholder":  "hypixel.net",
		"searchButton":      "Consultar",
		"tryWith":           "Prueba con:",
		"errorTitle":        "No se pudo conectar",
		"online":            "En línea",
		"offline":           "Fuera de línea",
		"players":           "jugadores",
		"serverDescription": "Descripción del Servidor",
		"connectedPlayers":  "Jugadores Conectados",
		"serverInfo":        "Información del Servidor",
		"software":          "Software",
		"gamemode":          "Modo de juego",
		"map":               "Mapa",
		"protocol":          "Protocolo",
		"ip":                "IP",
		"port":              "Puerto",
		"lastQuery":         "Última consulta",
		"version":           "Versión",
		"noDescription":     "Sin descripción",
		"connectionError":   "No se pudo conectar al servidor",
		"invalidIP":         "Formato de IP no válido",
		"timeout":           "Tiempo de espera agotado. El servidor puede estar offline.",
		"enterServer":       "Introduce la dirección de un servidor",
		"switchLanguage":    "Cambiar a inglés",
		"filterPlayers":     "Filtrar jugadores",
	},
	English: {
		"title":             "EchoStatus",
		"subtitle":          "Check Minecraft server information",
		"inputPlaceholder":  "hypixel.net",
		"searchButton":      "Query",
		"tryWith":           "Try with:",
		"errorTitle":        "Could not connect",
		"online":            "Online",
		"offline":           "Offline",
		"players":           "players",
		"serverDescription": "Server Description",
		"connectedPlayers":  "Connected Players",
		"serverInfo":        "Server Information",
		"software":          "Software",
		"gamemode":          "Gamemode",
		"map":               "Map",
		"protocol":          "Protocol",
		"ip":                "IP",
		"port":              "Port",
		"lastQuery":         "Last query",
		"version":           "Version",
		"noDescription":     "No description",
		"connectionError":   "Could not connect to server",
		"invalidIP":         "Invalid IP format",
		"timeout":           "Request timeout. Server may be offline.",
		"enterServer":       "Enter a server address",
		"switchLanguage":    "Switch to Spanish",
		"filterPlayers":     "Filter players",
	},
}
