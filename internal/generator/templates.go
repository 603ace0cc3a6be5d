package generator

// Artifact templates. Values are substituted at generation time; everything
// else is fixed so identical inputs reproduce identical bytes.

const manifestTemplate = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android"
    package="{{.PackageName}}">

    <uses-permission android:name="android.permission.INTERNET" />

    <application
        android:label="{{.Label}}"
        android:icon="@android:drawable/sym_def_app_icon">
        <activity
            android:name=".MainActivity"
            android:exported="true"
            android:screenOrientation="portrait">
            <intent-filter>
                <action android:name="android.intent.action.MAIN" />
                <category android:name="android.intent.category.LAUNCHER" />
            </intent-filter>
        </activity>
    </application>
</manifest>
`

const buildDescriptorTemplate = `plugins {
    id 'com.android.application'
    id 'org.jetbrains.kotlin.android'
}

android {
    namespace '{{.PackageName}}'
    compileSdk {{.CompileSDK}}

    defaultConfig {
        applicationId '{{.PackageName}}'
        minSdk {{.MinSDK}}
        targetSdk {{.TargetSDK}}
        versionCode 1
        versionName "1.0"
    }
}

dependencies {
    implementation 'androidx.core:core-ktx:1.12.0'
}
`

const activityTemplate = `package {{.PackageName}}

import android.app.Activity
import android.graphics.BitmapFactory
import android.os.Bundle
import android.os.Handler
import android.os.Looper
import android.util.Log
import android.util.TypedValue
import android.view.View
import android.widget.Button
import android.widget.EditText
import android.widget.ImageView
import android.widget.LinearLayout
import android.widget.ScrollView
import android.widget.TextView
import android.widget.Toast
import java.net.HttpURLConnection
import java.net.URL

class MainActivity : Activity() {

    private val uiHandler = Handler(Looper.getMainLooper())

    private val navigator = ScreenNavigator(
        screens = listOf({{.ScreenNameList}}),
        show = { name -> showScreen(name) },
        onMissing = { name -> notify("screen not found: " + name) },
        onExit = { finish() },
    )

    override fun onCreate(savedInstanceState: Bundle?) {
        super.onCreate(savedInstanceState)
        navigator.start()
    }

    override fun onBackPressed() {
        navigator.back()
    }

    private fun showScreen(name: String) {
        val view = when (name) {
{{range .Screens}}            {{.NameLiteral}} -> buildScreen{{.Index}}()
{{end}}            else -> return
        }
        val scroll = ScrollView(this)
        scroll.addView(view)
        setContentView(scroll)
    }
{{range .Screens}}
    // screen {{.Index}}: {{.Name}}
    private fun buildScreen{{.Index}}(): View {
{{.Body}}    }
{{end}}
    private fun notify(message: String) {
        Toast.makeText(this, message, Toast.LENGTH_SHORT).show()
    }

    private fun dp(value: Int): Int =
        TypedValue.applyDimension(TypedValue.COMPLEX_UNIT_DIP, value.toFloat(), resources.displayMetrics).toInt()

    // Background work runs off the UI thread; completions marshal back onto
    // it through uiHandler before touching navigation state or notifying.

    private fun readFileAsync(path: String) {
        Thread {
            val content = openFileInput(path).bufferedReader().use { it.readText() }
            uiHandler.post { notify(content) }
        }.start()
    }

    private fun writeFileAsync(path: String, content: String) {
        Thread {
            openFileOutput(path, MODE_PRIVATE).use { it.write(content.toByteArray()) }
            uiHandler.post { notify("saved " + path) }
        }.start()
    }

    private fun httpGetAsync(url: String) {
        Thread {
            val conn = URL(url).openConnection() as HttpURLConnection
            val body = conn.inputStream.bufferedReader().use { it.readText() }
            conn.disconnect()
            uiHandler.post { Log.i("QuickApp", body) }
        }.start()
    }
}

// ScreenNavigator manages the screen backstack. The backstack holds
// previously visited screens; the first entry ever pushed is the home
// screen, pushed when navigating away from it. Back on an empty backstack
// exits.
class ScreenNavigator(
    private val screens: List<String>,
    private val show: (String) -> Unit,
    private val onMissing: (String) -> Unit,
    private val onExit: () -> Unit,
) {
    private val backstack = ArrayDeque<String>()
    private var current = ""

    fun start() {
        current = screens.first()
        show(current)
    }

    fun goTo(target: String) {
        if (target !in screens) {
            onMissing(target)
            return
        }
        backstack.addLast(current)
        current = target
        show(current)
    }

    fun back() {
        val previous = backstack.removeLastOrNull()
        if (previous == null) {
            onExit()
            return
        }
        current = previous
        show(current)
    }
}
`
