package scoring

// affinity links on-premises technologies to the managed services that
// usually replace or host them.
type affinity struct {
	technologies []string
	services     []string
}

var affinities = []affinity{
	{[]string{"Docker", "Kubernetes", "OpenShift", "Containerd"}, []string{"Azure Kubernetes Service", "Azure Container Registry", "Azure Container Apps"}},
	{[]string{"Spring Boot", "Java", "Tomcat"}, []string{"Azure Spring Apps", "Azure App Service"}},
	{[]string{"ASP.NET", ".NET", "IIS"}, []string{"Azure App Service"}},
	{[]string{"Node.js", "Python", "PHP", "Django", "Flask"}, []string{"Azure App Service"}},
	{[]string{"PostgreSQL", "Postgres"}, []string{"Azure Database for PostgreSQL"}},
	{[]string{"MySQL", "MariaDB"}, []string{"Azure Database for MySQL"}},
	{[]string{"SQL Server", "MSSQL"}, []string{"Azure SQL Database", "Azure SQL Managed Instance"}},
	{[]string{"Oracle"}, []string{"Oracle Database@Azure", "Azure Virtual Machines"}},
	{[]string{"MongoDB", "Cassandra", "CosmosDB"}, []string{"Azure Cosmos DB"}},
	{[]string{"Redis"}, []string{"Azure Cache for Redis"}},
	{[]string{"RabbitMQ", "ActiveMQ", "IBM MQ", "MSMQ"}, []string{"Azure Service Bus"}},
	{[]string{"Kafka"}, []string{"Azure Event Hubs"}},
	{[]string{"Elasticsearch", "Solr"}, []string{"Azure AI Search"}},
	{[]string{"Spark", "Hadoop", "Databricks"}, []string{"Azure Databricks", "Azure Synapse Analytics"}},
	{[]string{"BizTalk", "MuleSoft"}, []string{"Azure Logic Apps", "Azure API Management"}},
	{[]string{"Nginx", "HAProxy", "F5"}, []string{"Azure Application Gateway", "Azure Front Door"}},
	{[]string{"Active Directory", "LDAP"}, []string{"Microsoft Entra ID"}},
	{[]string{"NFS", "SMB", "File Server"}, []string{"Azure Files"}},
	{[]string{"Windows Server", "Linux", "VMware"}, []string{"Azure Virtual Machines"}},
	{[]string{"TensorFlow", "PyTorch", "scikit-learn"}, []string{"Azure Machine Learning"}},
}
