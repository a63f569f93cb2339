package steam

import "context"

type App struct {
	AppID int    `json:"appid"`
	Name  string `json:"name"`
}

type AppListResponse struct {
	AppList *AppList `json:"applist"`
}

type AppList struct {
	Apps []App `json:"apps"`
}

func (client client) GetAppList(ctx context.Context) ([]App, error) {
	var appListResponse AppListResponse

	err := client.sendRequestAPI(ctx, "ISteamApps/GetAppList/v2", nil, &appListResponse)
	if err != nil {
		return nil, err
	}

	if appListResponse.AppList == nil {
		return nil, nil
	}

	return appListResponse.AppList.Apps, nil
}
