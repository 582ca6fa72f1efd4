package ports

type Auth interface {
	IssueToken(clientID, clientSecret string) (string, error)
}
